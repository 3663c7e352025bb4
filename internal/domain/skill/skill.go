package skill

import (
	"context"
	"errors"
	"strings"
)

// CategoryManagement is rendered separately by the dashboard.
const CategoryManagement = "management"

type Skill struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Category   string `json:"category"`
}

func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id int64) error
	// List is ordered by percentage, highest first.
	List(ctx context.Context) ([]*Skill, error)
}
