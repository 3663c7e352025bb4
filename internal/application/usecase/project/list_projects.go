package project

import (
	"context"

	"github.com/khoahotran/personal-portfolio/internal/domain/project"
)

// ListProjectsUseCase returns every project, featured or not, for the dashboard.
type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

// ListFeaturedProjectsUseCase returns what the public page shows.
type ListFeaturedProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListFeaturedProjectsUseCase(pRepo project.Repository) *ListFeaturedProjectsUseCase {
	return &ListFeaturedProjectsUseCase{projectRepo: pRepo}
}

func (uc *ListFeaturedProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
