package project

import (
	"context"
	"fmt"
	"time"

	"github.com/khoahotran/personal-portfolio/adapters/event"
	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/domain/project"
	"github.com/khoahotran/personal-portfolio/pkg/apperror"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	notifier    *service.ChangeNotifier
}

func NewUpdateProjectUseCase(pRepo project.Repository, n *service.ChangeNotifier) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo, notifier: n}
}

type UpdateProjectInput struct {
	ProjectID    int64
	Title        string
	Description  string
	Technologies *string
	DemoURL      *string
	GithubURL    *string
	ImageURL     *string
	Featured     bool
}

// Execute replaces the whole row. There is no read first: updating an ID
// that does not exist is a silent no-op.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) error {

	p := &project.Project{
		ID:           input.ProjectID,
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		DemoURL:      input.DemoURL,
		GithubURL:    input.GithubURL,
		ImageURL:     input.ImageURL,
		Featured:     input.Featured,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("update project failed: %w", err)
	}

	uc.notifier.Changed(ctx, event.EventUpdated, event.EntityProject, p.ID)
	return nil
}
