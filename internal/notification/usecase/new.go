package usecase

import (
	"time"

	"cicd-telegram-notifier/internal/notification"
	"cicd-telegram-notifier/internal/notification/repository"
	"cicd-telegram-notifier/pkg/log"
)

// defaultSendTimeout bounds one recipient's delivery attempt so a single
// unreachable chat cannot stall the whole batch.
const defaultSendTimeout = 10 * time.Second

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	repo        repository.Repository
	sender      notification.Sender
	l           log.Logger
	sendTimeout time.Duration
}

// New creates a new notification UseCase implementation. The store and the
// delivery channel are injected here; the dispatcher holds no global state.
func New(repo repository.Repository, sender notification.Sender, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		sender:      sender,
		l:           l,
		sendTimeout: defaultSendTimeout,
	}
}
