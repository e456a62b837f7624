package usecase

import (
	"context"
	"errors"
	"testing"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/subscription"
	repo "cicd-telegram-notifier/internal/subscription/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockRepository struct {
	project    model.Project
	projectErr error

	createdProjects []repo.CreateProjectOptions

	subscriber model.Subscriber
	getErr     error

	upserts []repo.UpsertSubscriberOptions

	flagUpdates []repo.UpdateNotifyFlagOptions
	updated     model.Subscriber

	deleteCount int64
	deleteErr   error

	byChat  []model.Subscriber
	all     []model.Subscriber
	listErr error

	projects []model.Project
}

func (m *mockRepository) GetSubscriber(ctx context.Context, chatID, repository string) (model.Subscriber, error) {
	return m.subscriber, m.getErr
}

func (m *mockRepository) UpsertSubscriber(ctx context.Context, opt repo.UpsertSubscriberOptions) (model.Subscriber, error) {
	m.upserts = append(m.upserts, opt)
	return model.Subscriber{
		ID:         "sub-1",
		ChatID:     opt.ChatID,
		Repository: opt.Repository,
		ProjectID:  opt.ProjectID,
		IsActive:   true,
	}, nil
}

func (m *mockRepository) UpdateNotifyFlag(ctx context.Context, opt repo.UpdateNotifyFlagOptions) (model.Subscriber, error) {
	m.flagUpdates = append(m.flagUpdates, opt)
	s := m.subscriber
	s.SetNotifyFlag(opt.Kind, opt.Value)
	return s, nil
}

func (m *mockRepository) DeleteSubscriber(ctx context.Context, chatID, repository string) (int64, error) {
	return m.deleteCount, m.deleteErr
}

func (m *mockRepository) DeleteByChat(ctx context.Context, chatID string) (int64, error) {
	return int64(len(m.byChat)), m.deleteErr
}

func (m *mockRepository) ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error) {
	return m.byChat, m.listErr
}

func (m *mockRepository) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	return m.all, m.listErr
}

func (m *mockRepository) GetProjectByRepository(ctx context.Context, repository string) (model.Project, error) {
	return m.project, m.projectErr
}

func (m *mockRepository) CreateProject(ctx context.Context, opt repo.CreateProjectOptions) (model.Project, error) {
	m.createdProjects = append(m.createdProjects, opt)
	return model.Project{ID: "proj-new", Name: opt.Name, Repository: opt.Repository, IsActive: true}, nil
}

func (m *mockRepository) ListActiveProjects(ctx context.Context) ([]model.Project, error) {
	return m.projects, m.listErr
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Project On First Registration", func(t *testing.T) {
		repository := &mockRepository{}
		uc := New(repository, &mockLogger{})

		out, err := uc.Register(ctx, subscription.RegisterInput{
			ChatID:     "100",
			Username:   "alice",
			Repository: "acme/widget",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.ProjectCreated {
			t.Error("expected project auto-creation")
		}
		if len(repository.createdProjects) != 1 {
			t.Fatalf("expected 1 project insert, got %d", len(repository.createdProjects))
		}
		if repository.createdProjects[0].Name != "widget" {
			t.Errorf("project name should be repo half, got %q", repository.createdProjects[0].Name)
		}
		if len(repository.upserts) != 1 || repository.upserts[0].ProjectID != "proj-new" {
			t.Errorf("upsert must reference the new project: %+v", repository.upserts)
		}
	})

	t.Run("Reuses Existing Project", func(t *testing.T) {
		repository := &mockRepository{
			project: model.Project{ID: "proj-1", Name: "Widget", Repository: "acme/widget", IsActive: true},
		}
		uc := New(repository, &mockLogger{})

		out, err := uc.Register(ctx, subscription.RegisterInput{ChatID: "100", Repository: "acme/widget"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ProjectCreated || len(repository.createdProjects) != 0 {
			t.Error("existing project must not be recreated")
		}
		if out.Project.ID != "proj-1" {
			t.Errorf("unexpected project: %+v", out.Project)
		}
	})

	t.Run("Rejects Bad Repository", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		for _, bad := range []string{"", "noslash", "a/b/c", "/repo", "owner/"} {
			_, err := uc.Register(ctx, subscription.RegisterInput{ChatID: "100", Repository: bad})
			if !errors.Is(err, subscription.ErrInvalidRepository) {
				t.Errorf("repository %q: expected ErrInvalidRepository, got %v", bad, err)
			}
		}
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Registration", func(t *testing.T) {
		uc := New(&mockRepository{deleteCount: 1}, &mockLogger{})
		if err := uc.Unregister(ctx, "100", "acme/widget"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Not Registered", func(t *testing.T) {
		uc := New(&mockRepository{deleteCount: 0}, &mockLogger{})
		if err := uc.Unregister(ctx, "100", "acme/widget"); !errors.Is(err, subscription.ErrNotRegistered) {
			t.Errorf("expected ErrNotRegistered, got %v", err)
		}
	})
}

func TestUnregisterChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Wipes Chat", func(t *testing.T) {
		repository := &mockRepository{byChat: []model.Subscriber{
			{ID: "s1", ChatID: "-42", Repository: "acme/widget"},
			{ID: "s2", ChatID: "-42", Repository: "acme/gadget"},
		}}
		uc := New(repository, &mockLogger{})

		out, err := uc.UnregisterChat(ctx, "-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Removed) != 2 {
			t.Errorf("expected 2 removed, got %d", len(out.Removed))
		}
	})

	t.Run("Nothing To Delete", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		if _, err := uc.UnregisterChat(ctx, "-42"); !errors.Is(err, subscription.ErrNothingToDelete) {
			t.Errorf("expected ErrNothingToDelete, got %v", err)
		}
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Flips Flag", func(t *testing.T) {
		repository := &mockRepository{subscriber: model.Subscriber{
			ID: "s1", ChatID: "100", Repository: "acme/widget", NotifyOnSuccess: false,
		}}
		uc := New(repository, &mockLogger{})

		out, err := uc.Toggle(ctx, subscription.ToggleInput{
			ChatID: "100", Repository: "acme/widget", Kind: model.NotifySuccess,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.NewValue {
			t.Error("expected flag flipped to true")
		}
		if len(repository.flagUpdates) != 1 || repository.flagUpdates[0].Kind != model.NotifySuccess {
			t.Errorf("unexpected flag update: %+v", repository.flagUpdates)
		}
	})

	t.Run("Not Registered", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		_, err := uc.Toggle(ctx, subscription.ToggleInput{
			ChatID: "100", Repository: "acme/widget", Kind: model.NotifyBuild,
		})
		if !errors.Is(err, subscription.ErrNotRegistered) {
			t.Errorf("expected ErrNotRegistered, got %v", err)
		}
	})
}
