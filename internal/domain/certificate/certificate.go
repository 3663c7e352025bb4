package certificate

import (
	"context"
	"errors"
	"strings"
)

// IssueDate is free text as typed by the owner ("Mar 2024", "2023"...).
type Certificate struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer"`
	Description *string `json:"description"`
	IssueDate   string  `json:"issue_date"`
	ImageURL    *string `json:"image_url"`
}

func (c *Certificate) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(c.Issuer) == "" {
		return errors.New("issuer is required")
	}
	if strings.TrimSpace(c.IssueDate) == "" {
		return errors.New("issue date is required")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, c *Certificate) error
	Update(ctx context.Context, c *Certificate) error
	Delete(ctx context.Context, id int64) error
	// List returns the most recently created certificates first.
	List(ctx context.Context) ([]*Certificate, error)
}
