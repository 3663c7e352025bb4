package education

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/education"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type EducationUseCase struct {
	repo     education.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewEducationUseCase(r education.Repository, n *service.ChangeNotifier, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, notifier: n, logger: log}
}

type CreateEducationInput struct {
	Institution string
	Location    string
	StartYear   int
	EndYear     int
}

func (uc *EducationUseCase) CreateEducation(ctx context.Context, in CreateEducationInput) (*education.Education, error) {
	item := &education.Education{
		Institution: in.Institution,
		Location:    in.Location,
		StartYear:   in.StartYear,
		EndYear:     in.EndYear,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected education input", zap.Error(err))
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventCreated, event.EntityEducation, item.ID)
	uc.logger.Info("Education created", zap.Int64("education_id", item.ID))
	return item, nil
}

type UpdateEducationInput struct {
	ID          int64
	Institution string
	Location    string
	StartYear   int
	EndYear     int
}

// UpdateEducation overwrites every field of the row; a missing ID is not an error.
func (uc *EducationUseCase) UpdateEducation(ctx context.Context, in UpdateEducationInput) (*education.Education, error) {
	item := &education.Education{
		ID:          in.ID,
		Institution: in.Institution,
		Location:    in.Location,
		StartYear:   in.StartYear,
		EndYear:     in.EndYear,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected education input", zap.Error(err))
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntityEducation, item.ID)
	uc.logger.Info("Education updated", zap.Int64("education_id", item.ID))
	return item, nil
}

func (uc *EducationUseCase) DeleteEducation(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, event.EventDeleted, event.EntityEducation, id)
	uc.logger.Info("Education deleted", zap.Int64("education_id", id))
	return nil
}

func (uc *EducationUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	return uc.repo.List(ctx)
}
