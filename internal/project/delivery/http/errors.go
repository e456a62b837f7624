package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/project"
	"cicd-telegram-notifier/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch err {
	case project.ErrInvalidRepository:
		response.Error(c, err, nil)
	case project.ErrDuplicateRepository:
		response.ErrorWithStatus(c, http.StatusConflict, err)
	case project.ErrProjectNotFound:
		response.ErrorWithStatus(c, http.StatusNotFound, err)
	default:
		response.InternalError(c, err)
	}
}
