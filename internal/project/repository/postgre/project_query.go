package postgre

import (
	"fmt"
	"strings"

	repo "cicd-telegram-notifier/internal/project/repository"
)

func buildGetOneQuery(opt repo.GetOneProjectOptions) (string, []any) {
	conditions := []string{}
	args := []any{}

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Repository != "" {
		args = append(args, opt.Repository)
		conditions = append(conditions, fmt.Sprintf("repository = $%d", len(args)))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "TRUE")
	}
	return strings.Join(conditions, " AND "), args
}

func buildFilterQuery(opt repo.ListProjectsOptions) (string, []any) {
	conditions := []string{}
	args := []any{}

	if opt.IsActive != nil {
		args = append(args, *opt.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "TRUE")
	}
	return strings.Join(conditions, " AND "), args
}

func buildListQuery(opt repo.ListProjectsOptions) (string, []any) {
	where, args := buildFilterQuery(opt)

	var sb strings.Builder
	sb.WriteString("WHERE ")
	sb.WriteString(where)
	sb.WriteString(" ORDER BY created_at DESC")

	args = append(args, opt.Limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, opt.Offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}
