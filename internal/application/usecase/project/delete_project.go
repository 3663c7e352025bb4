package project

import (
	"context"
	"fmt"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	notifier    *service.ChangeNotifier
}

func NewDeleteProjectUseCase(pRepo project.Repository, n *service.ChangeNotifier) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, notifier: n}
}

type DeleteProjectInput struct {
	ProjectID int64
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {

	err := uc.projectRepo.Delete(ctx, input.ProjectID)
	if err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	uc.notifier.Changed(ctx, event.EventDeleted, event.EntityProject, input.ProjectID)
	return nil
}
