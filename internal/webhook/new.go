package webhook

import (
	"cicd-telegram-notifier/internal/notification"
	pkgLog "cicd-telegram-notifier/pkg/log"
)

type Handler struct {
	notificationUC notification.UseCase
	security       *SecurityValidator
	l              pkgLog.Logger
}

func NewHandler(
	notificationUC notification.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		notificationUC: notificationUC,
		security:       NewSecurityValidator(securityConfig),
		l:              l,
	}
}
