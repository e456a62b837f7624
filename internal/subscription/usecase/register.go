package usecase

import (
	"context"
	"fmt"
	"strings"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/subscription"
	repo "cicd-telegram-notifier/internal/subscription/repository"
)

// validRepository checks the owner/repo shape.
func validRepository(repository string) bool {
	parts := strings.Split(repository, "/")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

// Register upserts a (chat, repository) registration. The project row is
// auto-created on first sight of the repository, named after the repo half.
func (uc *implUseCase) Register(ctx context.Context, input subscription.RegisterInput) (subscription.RegisterOutput, error) {
	if !validRepository(input.Repository) {
		return subscription.RegisterOutput{}, subscription.ErrInvalidRepository
	}

	project, err := uc.repo.GetProjectByRepository(ctx, input.Repository)
	if err != nil {
		return subscription.RegisterOutput{}, err
	}

	var created bool
	if project.ID == "" {
		project, err = uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
			Name:        strings.SplitN(input.Repository, "/", 2)[1],
			Repository:  input.Repository,
			Description: fmt.Sprintf("Auto-created project for %s", input.Repository),
			IsActive:    true,
		})
		if err != nil {
			return subscription.RegisterOutput{}, err
		}
		created = true
		uc.l.Infof(ctx, "uc.Register auto-created project %s for %s", project.ID, input.Repository)
	}

	sub, err := uc.repo.UpsertSubscriber(ctx, repo.UpsertSubscriberOptions{
		ChatID:         input.ChatID,
		Username:       input.Username,
		GithubUsername: input.GithubUsername,
		Repository:     input.Repository,
		ProjectID:      project.ID,
	})
	if err != nil {
		return subscription.RegisterOutput{}, err
	}

	return subscription.RegisterOutput{
		Subscriber:     sub,
		Project:        project,
		ProjectCreated: created,
	}, nil
}

// Unregister removes one (chat, repository) registration.
func (uc *implUseCase) Unregister(ctx context.Context, chatID, repository string) error {
	deleted, err := uc.repo.DeleteSubscriber(ctx, chatID, repository)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return subscription.ErrNotRegistered
	}
	return nil
}

// UnregisterChat wipes every registration of the target chat.
func (uc *implUseCase) UnregisterChat(ctx context.Context, targetChatID string) (subscription.UnregisterChatOutput, error) {
	removed, err := uc.repo.ListByChat(ctx, targetChatID)
	if err != nil {
		return subscription.UnregisterChatOutput{}, err
	}
	if len(removed) == 0 {
		return subscription.UnregisterChatOutput{}, subscription.ErrNothingToDelete
	}

	if _, err := uc.repo.DeleteByChat(ctx, targetChatID); err != nil {
		return subscription.UnregisterChatOutput{}, err
	}

	uc.l.Infof(ctx, "uc.UnregisterChat removed %d registrations for chat %s", len(removed), targetChatID)
	return subscription.UnregisterChatOutput{
		ChatID:  targetChatID,
		Removed: removed,
	}, nil
}

// ListByChat returns a chat's registrations.
func (uc *implUseCase) ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error) {
	return uc.repo.ListByChat(ctx, chatID)
}

// Toggle flips one preference flag of an existing registration.
func (uc *implUseCase) Toggle(ctx context.Context, input subscription.ToggleInput) (subscription.ToggleOutput, error) {
	sub, err := uc.repo.GetSubscriber(ctx, input.ChatID, input.Repository)
	if err != nil {
		return subscription.ToggleOutput{}, err
	}
	if sub.ID == "" {
		return subscription.ToggleOutput{}, subscription.ErrNotRegistered
	}

	newValue := !sub.NotifyFlag(input.Kind)
	updated, err := uc.repo.UpdateNotifyFlag(ctx, repo.UpdateNotifyFlagOptions{
		ChatID:     input.ChatID,
		Repository: input.Repository,
		Kind:       input.Kind,
		Value:      newValue,
	})
	if err != nil {
		return subscription.ToggleOutput{}, err
	}

	return subscription.ToggleOutput{
		Subscriber: updated,
		NewValue:   newValue,
	}, nil
}

// ListProjects returns the active projects.
func (uc *implUseCase) ListProjects(ctx context.Context) ([]model.Project, error) {
	return uc.repo.ListActiveProjects(ctx)
}

// ListAll returns every registration across chats.
func (uc *implUseCase) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	return uc.repo.ListAll(ctx)
}
