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

type CreateProjectUseCase struct {
	projectRepo project.Repository
	notifier    *service.ChangeNotifier
}

func NewCreateProjectUseCase(pRepo project.Repository, n *service.ChangeNotifier) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		notifier:    n,
	}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies *string
	DemoURL      *string
	GithubURL    *string
	ImageURL     *string
	Featured     bool
}

type CreateProjectOutput struct {
	ProjectID int64
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {

	now := time.Now().UTC()

	newProject := &project.Project{
		Title:        input.Title,
		Description:  input.Description,
		Technologies: input.Technologies,
		DemoURL:      input.DemoURL,
		GithubURL:    input.GithubURL,
		ImageURL:     input.ImageURL,
		Featured:     input.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	uc.notifier.Changed(ctx, event.EventCreated, event.EntityProject, newProject.ID)

	return &CreateProjectOutput{ProjectID: newProject.ID}, nil
}
