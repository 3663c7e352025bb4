package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

// ThumbnailTransformation is a 400x400 face-aware square crop.
const ThumbnailTransformation = "c_fill,g_auto,w_400,h_400"

type ProcessPhotoUseCase struct {
	profileRepo profile.Repository
	blobs       service.BlobStore
	cache       service.ProfileCache
	logger      logger.Logger
}

func NewProcessPhotoUseCase(r profile.Repository, b service.BlobStore, c service.ProfileCache, log logger.Logger) *ProcessPhotoUseCase {
	return &ProcessPhotoUseCase{profileRepo: r, blobs: b, cache: c, logger: log}
}

// Execute stores a thumbnail URL for a freshly uploaded photo. Events of any
// other type are ignored.
func (uc *ProcessPhotoUseCase) Execute(ctx context.Context, payload event.ContentEventPayload) error {
	l := uc.logger.With(zap.String("photo_key", payload.PhotoKey), zap.String("event_type", string(payload.EventType)))

	if payload.EventType != event.EventPhotoUploaded {
		l.Debug("Skipping non-photo event")
		return nil
	}
	if payload.PhotoKey == "" || payload.PhotoURL == "" {
		l.Warn("Photo event without key or url, skipping")
		return nil
	}

	thumbURL, err := uc.blobs.TransformedURL(payload.PhotoKey, ThumbnailTransformation)
	if err != nil {
		return apperror.NewInternal("failed to build thumbnail URL", err)
	}

	if err := uc.profileRepo.SetPhotoThumbnail(ctx, payload.PhotoURL, thumbURL); err != nil {
		return apperror.NewInternal("failed to store thumbnail URL", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
			l.Error("Failed to invalidate profile cache", err)
		}
	}

	l.Info("Stored profile photo thumbnail", zap.String("thumbnail_url", thumbURL))
	return nil
}
