package education

import (
	"context"
	"errors"
	"strings"
)

type Education struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}

func (e *Education) Validate() error {
	if strings.TrimSpace(e.Institution) == "" {
		return errors.New("institution is required")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Education, error)
}
