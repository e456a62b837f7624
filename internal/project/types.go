package project

import "cicd-telegram-notifier/internal/model"

// --- UseCase Inputs ---

type CreateProjectInput struct {
	Name        string
	Repository  string
	Description string
}

type ListProjectsInput struct {
	// IsActive filters by active flag when set.
	IsActive *bool
	Limit    int
	Offset   int
}

// UpdateProjectInput is a partial update: nil/empty fields keep their stored
// values.
type UpdateProjectInput struct {
	ID          string
	Name        string
	Description string
	IsActive    *bool
}

// --- UseCase Outputs ---

type CreateProjectOutput struct {
	Project model.Project
}

type ListProjectsOutput struct {
	Projects []model.Project
	Total    int
	Limit    int
	Offset   int
}

type DetailProjectOutput struct {
	Project model.Project
}

type UpdateProjectOutput struct {
	Project model.Project
}
