package usecase

import (
	"cicd-telegram-notifier/internal/subscription"
	"cicd-telegram-notifier/internal/subscription/repository"
	"cicd-telegram-notifier/pkg/log"
)

// implUseCase is the private implementation of subscription.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new subscription UseCase implementation.
func New(repo repository.Repository, l log.Logger) subscription.UseCase {
	return &implUseCase{repo: repo, l: l}
}
