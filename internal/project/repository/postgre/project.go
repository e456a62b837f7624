package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cicd-telegram-notifier/internal/model"
	repo "cicd-telegram-notifier/internal/project/repository"
)

const projectColumns = `id, name, repository, description, is_active, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Repository, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateProject inserts a new project row and returns the created entity.
func (r *implRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	query := `
		INSERT INTO projects (id, name, repository, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Name, opt.Repository, opt.Description, opt.IsActive,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProject retrieves a single project by the provided filters (AND).
// Returns the zero-value Project when not found — not an error.
func (r *implRepository) GetOneProject(ctx context.Context, opt repo.GetOneProjectOptions) (model.Project, error) {
	mods, args := buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects WHERE %s LIMIT 1", projectColumns, mods)

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProjects returns a page of projects and the total count.
func (r *implRepository) ListProjects(ctx context.Context, opt repo.ListProjectsOptions) ([]model.Project, int, error) {
	where, countArgs := buildFilterQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM projects WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM projects %s", projectColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
			return nil, 0, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProjects"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return projects, total, nil
}

// UpdateProject updates a project by ID and returns the updated entity.
func (r *implRepository) UpdateProject(ctx context.Context, opt repo.UpdateProjectOptions) (model.Project, error) {
	query := `
		UPDATE projects
		SET name = $1, description = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + projectColumns

	p, err := scanProject(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.IsActive, opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProject"), err)
		return model.Project{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeleteProject removes a project by ID.
func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProject"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
