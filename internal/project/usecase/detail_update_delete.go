package usecase

import (
	"context"

	"cicd-telegram-notifier/internal/project"
	"cicd-telegram-notifier/internal/project/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (project.DetailProjectOutput, error) {
	p, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Detail.GetOneProject: %v", err)
		return project.DetailProjectOutput{}, err
	}
	if p.ID == "" {
		return project.DetailProjectOutput{}, project.ErrProjectNotFound
	}
	return project.DetailProjectOutput{Project: p}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input project.UpdateProjectInput) (project.UpdateProjectOutput, error) {
	current, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Update.GetOneProject: %v", err)
		return project.UpdateProjectOutput{}, err
	}
	if current.ID == "" {
		return project.UpdateProjectOutput{}, project.ErrProjectNotFound
	}

	isActive := current.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	p, err := uc.repo.UpdateProject(ctx, repository.UpdateProjectOptions{
		ID:          current.ID,
		Name:        coalesce(input.Name, current.Name),
		Description: coalesce(input.Description, current.Description),
		IsActive:    isActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Update.UpdateProject: %v", err)
		return project.UpdateProjectOutput{}, err
	}
	if p.ID == "" {
		return project.UpdateProjectOutput{}, project.ErrProjectNotFound
	}
	return project.UpdateProjectOutput{Project: p}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	current, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "project/usecase.Delete.GetOneProject: %v", err)
		return err
	}
	if current.ID == "" {
		return project.ErrProjectNotFound
	}

	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		uc.l.Errorf(ctx, "project/usecase.Delete.DeleteProject: %v", err)
		return err
	}
	return nil
}
