package http

import (
	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/auth"
	"cicd-telegram-notifier/internal/middleware"
	"cicd-telegram-notifier/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a signed access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Profile godoc
// @Summary     Current user profile
// @Description Returns the account of the authenticated caller.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/auth/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(ctx)
	output, err := h.uc.Profile(ctx, sc.UserID)
	if err != nil {
		if err == auth.ErrUserNotFound {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// ChangePassword godoc
// @Summary     Change password
// @Description Verifies the old password and stores a new one.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body changePasswordReq true "Old and new password"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request or weak password"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/auth/password [PUT]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(ctx)
	err := h.uc.ChangePassword(ctx, auth.ChangePasswordInput{
		UserID:      sc.UserID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch err {
		case auth.ErrInvalidCredentials:
			response.Unauthorized(c)
		case auth.ErrWeakPassword:
			response.Error(c, err, nil)
		default:
			h.l.Errorf(ctx, "uc.ChangePassword: %v", err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, nil)
}
