package socialmedia

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/socialmedia"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type SocialMediaUseCase struct {
	repo     socialmedia.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewSocialMediaUseCase(r socialmedia.Repository, n *service.ChangeNotifier, log logger.Logger) *SocialMediaUseCase {
	return &SocialMediaUseCase{repo: r, notifier: n, logger: log}
}

type CreateSocialMediaInput struct {
	Platform string
	URL      string
	Username *string
}

func (uc *SocialMediaUseCase) CreateSocialMedia(ctx context.Context, in CreateSocialMediaInput) (*socialmedia.SocialMedia, error) {
	item := &socialmedia.SocialMedia{
		Platform: in.Platform,
		URL:      in.URL,
		Username: in.Username,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected social media input", zap.Error(err))
		return nil, apperror.NewInvalidInput("social media validation failed", err)
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventCreated, event.EntitySocialMedia, item.ID)
	uc.logger.Info("Social media created", zap.Int64("social_media_id", item.ID))
	return item, nil
}

type UpdateSocialMediaInput struct {
	ID       int64
	Platform string
	URL      string
	Username *string
}

// UpdateSocialMedia overwrites every field of the row; a missing ID is not an error.
func (uc *SocialMediaUseCase) UpdateSocialMedia(ctx context.Context, in UpdateSocialMediaInput) (*socialmedia.SocialMedia, error) {
	item := &socialmedia.SocialMedia{
		ID:       in.ID,
		Platform: in.Platform,
		URL:      in.URL,
		Username: in.Username,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected social media input", zap.Error(err))
		return nil, apperror.NewInvalidInput("social media validation failed", err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntitySocialMedia, item.ID)
	uc.logger.Info("Social media updated", zap.Int64("social_media_id", item.ID))
	return item, nil
}

func (uc *SocialMediaUseCase) DeleteSocialMedia(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, event.EventDeleted, event.EntitySocialMedia, id)
	uc.logger.Info("Social media deleted", zap.Int64("social_media_id", id))
	return nil
}

func (uc *SocialMediaUseCase) ListSocialMedia(ctx context.Context) ([]*socialmedia.SocialMedia, error) {
	return uc.repo.List(ctx)
}
