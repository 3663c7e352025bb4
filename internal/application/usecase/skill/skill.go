package skill

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/skill"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type SkillUseCase struct {
	repo     skill.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewSkillUseCase(r skill.Repository, n *service.ChangeNotifier, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, notifier: n, logger: log}
}

type CreateSkillInput struct {
	Name       string
	Percentage int
	Category   string
}

func (uc *SkillUseCase) CreateSkill(ctx context.Context, in CreateSkillInput) (*skill.Skill, error) {
	item := &skill.Skill{
		Name:       in.Name,
		Percentage: in.Percentage,
		Category:   in.Category,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected skill input", zap.Error(err))
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventCreated, event.EntitySkill, item.ID)
	uc.logger.Info("Skill created", zap.Int64("skill_id", item.ID))
	return item, nil
}

type UpdateSkillInput struct {
	ID         int64
	Name       string
	Percentage int
	Category   string
}

// UpdateSkill overwrites every field of the row; a missing ID is not an error.
func (uc *SkillUseCase) UpdateSkill(ctx context.Context, in UpdateSkillInput) (*skill.Skill, error) {
	item := &skill.Skill{
		ID:         in.ID,
		Name:       in.Name,
		Percentage: in.Percentage,
		Category:   in.Category,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected skill input", zap.Error(err))
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntitySkill, item.ID)
	uc.logger.Info("Skill updated", zap.Int64("skill_id", item.ID))
	return item, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, event.EventDeleted, event.EntitySkill, id)
	uc.logger.Info("Skill deleted", zap.Int64("skill_id", id))
	return nil
}

func (uc *SkillUseCase) ListSkill(ctx context.Context) ([]*skill.Skill, error) {
	return uc.repo.List(ctx)
}
