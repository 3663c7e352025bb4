package socialmedia

import (
	"context"
	"errors"
	"strings"
)

// PresetPlatforms are the choices offered by the dashboard. Platform stays
// free text; the list is not enforced.
var PresetPlatforms = []string{
	"LinkedIn",
	"GitHub",
	"Instagram",
	"Twitter",
	"Facebook",
	"YouTube",
	"TikTok",
	"Website",
}

type SocialMedia struct {
	ID       int64   `json:"id"`
	Platform string  `json:"platform"`
	URL      string  `json:"url"`
	Username *string `json:"username"`
}

func (s *SocialMedia) Validate() error {
	if strings.TrimSpace(s.Platform) == "" {
		return errors.New("platform is required")
	}
	if strings.TrimSpace(s.URL) == "" {
		return errors.New("url is required")
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, s *SocialMedia) error
	Update(ctx context.Context, s *SocialMedia) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*SocialMedia, error)
}
