package repository

import (
	"context"

	"cicd-telegram-notifier/internal/model"
)

// Repository is the data-store interface for the project domain.
type Repository interface {
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	// GetOneProject returns the zero-value Project (ID == "") when no project
	// matches — not an error.
	GetOneProject(ctx context.Context, opt GetOneProjectOptions) (model.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, int, error)
	UpdateProject(ctx context.Context, opt UpdateProjectOptions) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
