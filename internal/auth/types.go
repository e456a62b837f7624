package auth

import "cicd-telegram-notifier/internal/model"

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	User  model.User
}

type ChangePasswordInput struct {
	UserID      string
	OldPassword string
	NewPassword string
}

type ProfileOutput struct {
	User model.User
}
