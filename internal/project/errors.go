package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrDuplicateRepository = errors.New("repository already has a project")
	ErrInvalidRepository   = errors.New("repository must be in format: owner/repo")
)
