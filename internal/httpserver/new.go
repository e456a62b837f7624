package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	subscriptionDelivery "cicd-telegram-notifier/internal/subscription/delivery/telegram"
	"cicd-telegram-notifier/pkg/log"
)

// WebhookHandler receives CI workflow events and serves delivery history.
type WebhookHandler interface {
	HandleGitHubWebhook(c *gin.Context)
	ListWebhooks(c *gin.Context)
}

// RouteRegistrar registers a domain's routes under the API group.
type RouteRegistrar func(api *gin.RouterGroup)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	telegramHandler subscriptionDelivery.Handler
	webhookHandler  WebhookHandler
	apiRegistrars   []RouteRegistrar
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Telegram bot webhook (subscription commands)
	TelegramHandler subscriptionDelivery.Handler

	// CI workflow event webhook + history
	WebhookHandler WebhookHandler

	// Authenticated API domains (auth, projects)
	APIRegistrars []RouteRegistrar
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		telegramHandler: cfg.TelegramHandler,
		webhookHandler:  cfg.WebhookHandler,
		apiRegistrars:   cfg.APIRegistrars,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
