package profile

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/profile"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

const DefaultMaxPhotoBytes int64 = 10 * 1024 * 1024

type UploadPhotoConfig struct {
	Folder   string
	MaxBytes int64
}

type UploadPhotoUseCase struct {
	profileRepo profile.Repository
	blobs       service.BlobStore
	notifier    *service.ChangeNotifier
	cfg         UploadPhotoConfig
	logger      logger.Logger
	now         func() time.Time
}

func NewUploadPhotoUseCase(
	r profile.Repository,
	b service.BlobStore,
	n *service.ChangeNotifier,
	cfg UploadPhotoConfig,
	log logger.Logger,
) *UploadPhotoUseCase {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxPhotoBytes
	}
	return &UploadPhotoUseCase{
		profileRepo: r,
		blobs:       b,
		notifier:    n,
		cfg:         cfg,
		logger:      log,
		now:         time.Now,
	}
}

type UploadPhotoInput struct {
	PhotoData string
	FileName  string
}

type UploadPhotoOutput struct {
	PhotoURL string
}

// photoKey never repeats: the millisecond timestamp is followed by a random
// fragment, so two uploads in the same millisecond still differ.
func (uc *UploadPhotoUseCase) photoKey(ext string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("profile-%d-%s.%s", uc.now().UnixMilli(), random, ext)
	if uc.cfg.Folder == "" {
		return name
	}
	return path.Join(uc.cfg.Folder, name)
}

func (uc *UploadPhotoUseCase) Execute(ctx context.Context, input UploadPhotoInput) (*UploadPhotoOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadPhoto")
	defer span.End()

	ext, err := PhotoExtension(input.FileName)
	if err != nil {
		return nil, apperror.NewValidation(err.Error())
	}
	data, err := decodePhoto(StripDataURLPrefix(input.PhotoData), uc.cfg.MaxBytes)
	if err != nil {
		return nil, apperror.NewValidation(err.Error())
	}

	key := uc.photoKey(ext)
	contentType := PhotoContentType(ext)
	span.SetAttributes(
		attribute.String("photo_key", key),
		attribute.Int("photo_bytes", len(data)),
	)
	l := uc.logger.With(zap.String("photo_key", key))

	if err := uc.blobs.Upload(ctx, key, data, contentType); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upload profile photo", err)
	}

	photoURL, err := uc.blobs.PublicURL(key)
	if err != nil {
		span.RecordError(err)
		uc.deleteOrphan(key, l)
		return nil, apperror.NewInternal("failed to resolve profile photo url", err)
	}

	if err := uc.profileRepo.SetLatestPhoto(ctx, photoURL); err != nil {
		span.RecordError(err)
		uc.deleteOrphan(key, l)
		return nil, err
	}

	l.Info("Profile photo uploaded", zap.String("content_type", contentType), zap.Int("bytes", len(data)))
	uc.notifier.Publish(ctx, event.ContentEventPayload{
		EventType: event.EventPhotoUploaded,
		Entity:    event.EntityProfile,
		PhotoKey:  key,
		PhotoURL:  photoURL,
	})

	return &UploadPhotoOutput{PhotoURL: photoURL}, nil
}

func (uc *UploadPhotoUseCase) deleteOrphan(key string, l logger.Logger) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uc.blobs.Delete(ctx, key); err != nil {
			l.Error("Failed to delete orphaned profile photo", err)
		}
	}()
}
