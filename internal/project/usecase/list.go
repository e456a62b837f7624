package usecase

import (
	"context"

	"cicd-telegram-notifier/internal/project"
	"cicd-telegram-notifier/internal/project/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (uc *implUseCase) List(ctx context.Context, input project.ListProjectsInput) (project.ListProjectsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	projects, total, err := uc.repo.ListProjects(ctx, repository.ListProjectsOptions{
		IsActive: input.IsActive,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.List.ListProjects: %v", err)
		return project.ListProjectsOutput{}, err
	}

	return project.ListProjectsOutput{
		Projects: projects,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
