package usecase

import (
	"cicd-telegram-notifier/internal/auth"
	"cicd-telegram-notifier/internal/auth/repository"
	pkgLog "cicd-telegram-notifier/pkg/log"
	"cicd-telegram-notifier/pkg/scope"
)

type implUseCase struct {
	repo       repository.Repository
	jwtManager scope.Manager
	l          pkgLog.Logger
}

// New creates a new auth use case.
func New(l pkgLog.Logger, repo repository.Repository, jwtManager scope.Manager) auth.UseCase {
	return &implUseCase{
		repo:       repo,
		jwtManager: jwtManager,
		l:          l,
	}
}
