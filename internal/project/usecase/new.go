package usecase

import (
	"cicd-telegram-notifier/internal/project"
	"cicd-telegram-notifier/internal/project/repository"
	pkgLog "cicd-telegram-notifier/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new project use case.
func New(l pkgLog.Logger, repo repository.Repository) project.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
