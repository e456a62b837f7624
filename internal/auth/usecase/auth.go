package usecase

import (
	"context"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"cicd-telegram-notifier/internal/auth"
	"cicd-telegram-notifier/internal/auth/repository"
	"cicd-telegram-notifier/pkg/scope"
)

// validPassword requires at least 6 characters with one upper, one lower and
// one digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetUser(ctx, repository.GetUserOptions{Username: input.Username})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.GetUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(scope.Payload{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Login.Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: token, User: user}, nil
}

func (uc *implUseCase) ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error {
	user, err := uc.repo.GetUser(ctx, repository.GetUserOptions{ID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.ChangePassword.GetUser: %v", err)
		return err
	}
	if user.ID == "" {
		return auth.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	if !validPassword(input.NewPassword) {
		return auth.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.ChangePassword.GenerateFromPassword: %v", err)
		return err
	}

	if err := uc.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		uc.l.Errorf(ctx, "auth/usecase.ChangePassword.UpdatePassword: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Profile(ctx context.Context, userID string) (auth.ProfileOutput, error) {
	user, err := uc.repo.GetUser(ctx, repository.GetUserOptions{ID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.Profile.GetUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	if user.ID == "" {
		return auth.ProfileOutput{}, auth.ErrUserNotFound
	}
	return auth.ProfileOutput{User: user}, nil
}

// EnsureDefaultUser creates the bootstrap account on first start. It is a
// no-op when any account already exists.
func (uc *implUseCase) EnsureDefaultUser(ctx context.Context, username, password string) error {
	total, err := uc.repo.CountUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.EnsureDefaultUser.CountUsers: %v", err)
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "auth/usecase.EnsureDefaultUser.GenerateFromPassword: %v", err)
		return err
	}

	if _, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Username:     username,
		PasswordHash: string(hash),
	}); err != nil {
		uc.l.Errorf(ctx, "auth/usecase.EnsureDefaultUser.CreateUser: %v", err)
		return err
	}
	uc.l.Infof(ctx, "auth/usecase.EnsureDefaultUser: created default user %q", username)
	return nil
}
