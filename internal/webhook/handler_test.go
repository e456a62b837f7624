package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/notification"
	pkgLog "cicd-telegram-notifier/pkg/log"
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

var _ pkgLog.Logger = (*mockLogger)(nil)

type mockUseCase struct {
	dispatchOut notification.DispatchOutput
	dispatchErr error
	gotPayload  notification.WebhookPayload
	calls       int

	historyOut notification.ListWebhooksOutput
	historyErr error
}

func (m *mockUseCase) Dispatch(ctx context.Context, payload notification.WebhookPayload) (notification.DispatchOutput, error) {
	m.calls++
	m.gotPayload = payload
	return m.dispatchOut, m.dispatchErr
}

func (m *mockUseCase) History(ctx context.Context, input notification.ListWebhooksInput) (notification.ListWebhooksOutput, error) {
	return m.historyOut, m.historyErr
}

func validBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(notification.WebhookPayload{
		WorkflowName: "Build",
		Repository:   "acme/widget",
		RunID:        "42",
		RunURL:       "https://github.com/acme/widget/actions/runs/42",
		Status:       "success",
		Branch:       "main",
		CommitSHA:    "0123456789abcdef",
		Actor:        "octocat",
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func postWebhook(h *Handler, body []byte, mutate func(*http.Request)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/webhook/github", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(c.Request)
	}
	h.HandleGitHubWebhook(c)
	return w
}

func TestHandleGitHubWebhook(t *testing.T) {
	t.Run("Processed", func(t *testing.T) {
		uc := &mockUseCase{dispatchOut: notification.DispatchOutput{
			ProjectName:   "Widget",
			AuditRecorded: true,
			Outcomes:      []notification.DeliveryOutcome{{ChatID: "100"}},
		}}
		h := NewHandler(uc, SecurityConfig{RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, validBody(t), nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.calls != 1 {
			t.Errorf("expected 1 dispatch, got %d", uc.calls)
		}
		if uc.gotPayload.Repository != "acme/widget" {
			t.Errorf("payload not decoded: %+v", uc.gotPayload)
		}
	})

	t.Run("Skipped", func(t *testing.T) {
		uc := &mockUseCase{dispatchOut: notification.DispatchOutput{
			Skipped:    true,
			SkipReason: "no subscribers registered",
		}}
		h := NewHandler(uc, SecurityConfig{RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, validBody(t), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("skipped")) {
			t.Errorf("expected skipped status in body: %s", w.Body.String())
		}
	})

	t.Run("Validation Error Returns 400", func(t *testing.T) {
		verr := &notification.ValidationError{}
		verr.Violations = []notification.FieldError{{Field: "repository", Message: "repository is required"}}
		uc := &mockUseCase{dispatchErr: verr}
		h := NewHandler(uc, SecurityConfig{RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, validBody(t), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("repository")) {
			t.Errorf("expected violation detail in body: %s", w.Body.String())
		}
	})

	t.Run("Bad Signature Returns 401", func(t *testing.T) {
		uc := &mockUseCase{}
		h := NewHandler(uc, SecurityConfig{Secret: "topsecret", RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, validBody(t), func(r *http.Request) {
			r.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Error("dispatch must not run on bad signature")
		}
	})

	t.Run("Valid Signature Accepted", func(t *testing.T) {
		uc := &mockUseCase{}
		h := NewHandler(uc, SecurityConfig{Secret: "topsecret", RateLimitPerMin: 600}, &mockLogger{})

		body := validBody(t)
		w := postWebhook(h, body, func(r *http.Request) {
			r.Header.Set("X-Hub-Signature-256", sign("topsecret", body))
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Disallowed IP Returns 403", func(t *testing.T) {
		uc := &mockUseCase{}
		h := NewHandler(uc, SecurityConfig{AllowedIPs: []string{"10.1.1.1"}, RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, validBody(t), func(r *http.Request) {
			r.RemoteAddr = "203.0.113.9:31337"
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON Returns 400", func(t *testing.T) {
		uc := &mockUseCase{}
		h := NewHandler(uc, SecurityConfig{RateLimitPerMin: 600}, &mockLogger{})

		w := postWebhook(h, []byte("{not json"), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Error("dispatch must not run on undecodable body")
		}
	})
}

func TestListWebhooks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Returns Page", func(t *testing.T) {
		uc := &mockUseCase{historyOut: notification.ListWebhooksOutput{
			Webhooks: []model.WebhookRecord{{ID: "wh-1", RunID: "42"}},
			Total:    1,
			Limit:    20,
		}}
		h := NewHandler(uc, SecurityConfig{RateLimitPerMin: 600}, &mockLogger{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/v1/webhooks?limit=20", nil)
		h.ListWebhooks(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("wh-1")) {
			t.Errorf("expected record in body: %s", w.Body.String())
		}
	})
}
