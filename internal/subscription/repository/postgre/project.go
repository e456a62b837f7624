package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/subscription/repository"
)

const projectColumns = `id, name, repository, description, is_active, created_at, updated_at`

// GetProjectByRepository returns the zero-value Project when no project exists
// for the repository.
func (r *implRepository) GetProjectByRepository(ctx context.Context, repository string) (model.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE repository = $1`

	var p model.Project
	err := r.db.QueryRowContext(ctx, query, repository).Scan(
		&p.ID, &p.Name, &p.Repository, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProjectByRepository"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	query := `
		INSERT INTO projects (id, name, repository, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + projectColumns

	var p model.Project
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Name, opt.Repository, opt.Description, opt.IsActive,
	).Scan(
		&p.ID, &p.Name, &p.Repository, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

func (r *implRepository) ListActiveProjects(ctx context.Context) ([]model.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE is_active = TRUE
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActiveProjects"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Repository, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActiveProjects"), err)
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActiveProjects"), err)
		return nil, repo.ErrFailedToList
	}
	return projects, nil
}
