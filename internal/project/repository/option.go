package repository

// CreateProjectOptions holds parameters for inserting a new project.
type CreateProjectOptions struct {
	Name        string
	Repository  string
	Description string
	IsActive    bool
}

// GetOneProjectOptions holds filter parameters for fetching a single project.
// All non-empty fields are applied as AND conditions.
type GetOneProjectOptions struct {
	ID         string
	Repository string
}

// ListProjectsOptions holds filter and pagination parameters.
type ListProjectsOptions struct {
	IsActive *bool
	Limit    int
	Offset   int
}

// UpdateProjectOptions holds the full post-coalesce state of one project.
type UpdateProjectOptions struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
}
