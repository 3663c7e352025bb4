package tool

import (
	"context"
	"errors"
	"strings"
)

type Tool struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"icon_url"`
}

func (t *Tool) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, t *Tool) error
	Update(ctx context.Context, t *Tool) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Tool, error)
}
