package usecase

import (
	"context"
	"strings"

	"cicd-telegram-notifier/internal/project"
	"cicd-telegram-notifier/internal/project/repository"
)

func validRepository(repo string) bool {
	parts := strings.Split(repo, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

func (uc *implUseCase) Create(ctx context.Context, input project.CreateProjectInput) (project.CreateProjectOutput, error) {
	if !validRepository(input.Repository) {
		return project.CreateProjectOutput{}, project.ErrInvalidRepository
	}

	existing, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{
		Repository: input.Repository,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Create.GetOneProject: %v", err)
		return project.CreateProjectOutput{}, err
	}
	if existing.ID != "" {
		return project.CreateProjectOutput{}, project.ErrDuplicateRepository
	}

	name := input.Name
	if name == "" {
		name = strings.Split(input.Repository, "/")[1]
	}

	p, err := uc.repo.CreateProject(ctx, repository.CreateProjectOptions{
		Name:        name,
		Repository:  input.Repository,
		Description: input.Description,
		IsActive:    true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Create.CreateProject: %v", err)
		return project.CreateProjectOutput{}, err
	}

	return project.CreateProjectOutput{Project: p}, nil
}
