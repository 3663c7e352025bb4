package tool

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/tool"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type ToolUseCase struct {
	repo     tool.Repository
	notifier *service.ChangeNotifier
	logger   logger.Logger
}

func NewToolUseCase(r tool.Repository, n *service.ChangeNotifier, log logger.Logger) *ToolUseCase {
	return &ToolUseCase{repo: r, notifier: n, logger: log}
}

type CreateToolInput struct {
	Name    string
	IconURL *string
}

func (uc *ToolUseCase) CreateTool(ctx context.Context, in CreateToolInput) (*tool.Tool, error) {
	item := &tool.Tool{
		Name:    in.Name,
		IconURL: in.IconURL,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected tool input", zap.Error(err))
		return nil, apperror.NewInvalidInput("tool validation failed", err)
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventCreated, event.EntityTool, item.ID)
	uc.logger.Info("Tool created", zap.Int64("tool_id", item.ID))
	return item, nil
}

type UpdateToolInput struct {
	ID      int64
	Name    string
	IconURL *string
}

// UpdateTool overwrites every field of the row; a missing ID is not an error.
func (uc *ToolUseCase) UpdateTool(ctx context.Context, in UpdateToolInput) (*tool.Tool, error) {
	item := &tool.Tool{
		ID:      in.ID,
		Name:    in.Name,
		IconURL: in.IconURL,
	}
	if err := item.Validate(); err != nil {
		uc.logger.Debug("Rejected tool input", zap.Error(err))
		return nil, apperror.NewInvalidInput("tool validation failed", err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.notifier.Changed(ctx, event.EventUpdated, event.EntityTool, item.ID)
	uc.logger.Info("Tool updated", zap.Int64("tool_id", item.ID))
	return item, nil
}

func (uc *ToolUseCase) DeleteTool(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notifier.Changed(ctx, event.EventDeleted, event.EntityTool, id)
	uc.logger.Info("Tool deleted", zap.Int64("tool_id", id))
	return nil
}

func (uc *ToolUseCase) ListTool(ctx context.Context) ([]*tool.Tool, error) {
	return uc.repo.List(ctx)
}
