package profile

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/certificate"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

// Repositories groups every table the public page is composed from.
type Repositories struct {
	Profile     profile.Repository
	Skill       skill.Repository
	Education   education.Repository
	Certificate certificate.Repository
	Tool        tool.Repository
	SocialMedia socialmedia.Repository
	Project     project.Repository
}

// View is the whole public page: the latest profile row and the full
// contents of every other table, in display order.
type View struct {
	Profile      *profile.Profile           `json:"profile"`
	Skills       []*skill.Skill             `json:"skills"`
	Education    []*education.Education     `json:"education"`
	Certificates []*certificate.Certificate `json:"certificates"`
	Tools        []*tool.Tool               `json:"tools"`
	SocialMedia  []*socialmedia.SocialMedia `json:"social_media"`
	Projects     []*project.Project         `json:"projects"`
}

type ProfileUseCase struct {
	repos    Repositories
	cache    service.ProfileCache
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewProfileUseCase(repos Repositories, cache service.ProfileCache, notifier *service.ChangeNotifier, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		repos:    repos,
		cache:    cache,
		notifier: notifier,
		logger:   log,
	}
}

var tracer = otel.Tracer("profile_usecase")

type GetProfileOutput struct {
	View *View
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteGetProfile")
	defer span.End()

	// gen stays negative when the cache could not be read, so nothing is stored.
	gen := int64(-1)
	if uc.cache != nil {
		var cached View
		g, hit, err := uc.cache.Get(ctx, &cached)
		if err != nil {
			uc.logger.Warn("Profile cache read failed, falling back to store")
		} else {
			gen = g
		}
		if hit && cached.Profile != nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return &GetProfileOutput{View: &cached}, nil
		}
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	view, err := uc.compose(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil && gen >= 0 {
		if err := uc.cache.Set(ctx, gen, view); err != nil {
			uc.logger.Error("Failed to cache profile view", err)
		}
	}
	return &GetProfileOutput{View: view}, nil
}

func (uc *ProfileUseCase) compose(ctx context.Context) (*View, error) {
	p, err := uc.repos.Profile.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	view := &View{Profile: p}

	if view.Skills, err = uc.repos.Skill.List(ctx); err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	if view.Education, err = uc.repos.Education.List(ctx); err != nil {
		return nil, fmt.Errorf("list education failed: %w", err)
	}
	if view.Certificates, err = uc.repos.Certificate.List(ctx); err != nil {
		return nil, fmt.Errorf("list certificates failed: %w", err)
	}
	if view.Tools, err = uc.repos.Tool.List(ctx); err != nil {
		return nil, fmt.Errorf("list tools failed: %w", err)
	}
	if view.SocialMedia, err = uc.repos.SocialMedia.List(ctx); err != nil {
		return nil, fmt.Errorf("list social media failed: %w", err)
	}
	if view.Projects, err = uc.repos.Project.ListFeatured(ctx); err != nil {
		return nil, fmt.Errorf("list featured projects failed: %w", err)
	}
	return view, nil
}

type UpdateProfileInput struct {
	Name     string
	Title    string
	Location string
	Email    string
	Phone    string
}

// ExecuteUpdateProfile overwrites every field of the latest profile row.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	err := uc.repos.Profile.UpdateLatest(ctx, profile.Details{
		Name:     input.Name,
		Title:    input.Title,
		Location: input.Location,
		Email:    input.Email,
		Phone:    input.Phone,
	})
	if err != nil {
		return fmt.Errorf("update profile failed: %w", err)
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntityProfile, 0)
	return nil
}
