package postgre

import (
	"database/sql"
	"fmt"

	"cicd-telegram-notifier/internal/project/repository"
	"cicd-telegram-notifier/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the project domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("project/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/postgre.%s", method)
}
