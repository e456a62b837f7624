package http

import (
	"time"

	"cicd-telegram-notifier/internal/auth"
	"cicd-telegram-notifier/internal/model"
)

// --- Request DTOs ---

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token: out.Token,
		User:  newUserResp(out.User),
	}
}

type profileResp struct {
	User userResp `json:"user"`
}

func (h *handler) newProfileResp(out auth.ProfileOutput) profileResp {
	return profileResp{User: newUserResp(out.User)}
}
