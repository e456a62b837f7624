package telegram

import (
	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/subscription"
	pkgLog "cicd-telegram-notifier/pkg/log"
	pkgTelegram "cicd-telegram-notifier/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds handler settings outside the use case.
type Config struct {
	AdminPassword string
}

// New creates a new Telegram delivery handler for bot commands.
func New(
	l pkgLog.Logger,
	uc subscription.UseCase,
	bot *pkgTelegram.Bot,
	cfg Config,
) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
		cfg: cfg,
	}
}
