package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/subscription"
	"cicd-telegram-notifier/internal/subscription/delivery/telegram"
	pkgTelegram "cicd-telegram-notifier/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

type mockSubscriptionUC struct {
	registerOut subscription.RegisterOutput
	registerErr error
	lastInput   subscription.RegisterInput

	unregisterErr error

	unregisterChatOut subscription.UnregisterChatOutput
	unregisterChatErr error

	byChat  []model.Subscriber
	listErr error

	toggleOut subscription.ToggleOutput
	toggleErr error
	lastKind  model.NotifyKind

	projects    []model.Project
	projectsErr error

	all []model.Subscriber
}

func (m *mockSubscriptionUC) Register(ctx context.Context, input subscription.RegisterInput) (subscription.RegisterOutput, error) {
	m.lastInput = input
	if m.registerErr != nil {
		return subscription.RegisterOutput{}, m.registerErr
	}
	if !strings.Contains(input.Repository, "/") {
		return subscription.RegisterOutput{}, subscription.ErrInvalidRepository
	}
	return m.registerOut, nil
}

func (m *mockSubscriptionUC) Unregister(ctx context.Context, chatID, repository string) error {
	return m.unregisterErr
}

func (m *mockSubscriptionUC) UnregisterChat(ctx context.Context, targetChatID string) (subscription.UnregisterChatOutput, error) {
	return m.unregisterChatOut, m.unregisterChatErr
}

func (m *mockSubscriptionUC) ListByChat(ctx context.Context, chatID string) ([]model.Subscriber, error) {
	return m.byChat, m.listErr
}

func (m *mockSubscriptionUC) Toggle(ctx context.Context, input subscription.ToggleInput) (subscription.ToggleOutput, error) {
	m.lastKind = input.Kind
	return m.toggleOut, m.toggleErr
}

func (m *mockSubscriptionUC) ListProjects(ctx context.Context) ([]model.Project, error) {
	return m.projects, m.projectsErr
}

func (m *mockSubscriptionUC) ListAll(ctx context.Context) ([]model.Subscriber, error) {
	return m.all, m.listErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	muc              *mockSubscriptionUC
	capturedMessages *[]string
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				*capturedMessages = append(*capturedMessages, text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	muc := &mockSubscriptionUC{}

	engine := gin.New()
	h := telegram.New(l, muc, bot, telegram.Config{AdminPassword: "hunter2"})
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		muc:              muc,
		capturedMessages: capturedMessages,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123, Type: "private"},
			From:      &pkgTelegram.User{ID: 456, Username: "alice"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(msgs *[]string, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(*msgs) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Chào mừng")
}

func TestHandleHelp(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/help")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Trợ giúp")
}

func TestHandleRegister_MissingArgs(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/register")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Cách sử dụng không đúng")
}

func TestHandleRegister_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.registerOut = subscription.RegisterOutput{
		Subscriber: model.Subscriber{ID: "sub-1", ChatID: "123", Repository: "acme/widget"},
		Project:    model.Project{ID: "proj-1", Name: "widget", Repository: "acme/widget"},
	}
	w := sendWebhook(env.engine, "/register acme/widget alice-gh")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Đăng ký thành công")

	if env.muc.lastInput.ChatID != "123" {
		t.Errorf("chat ID must come from update, got %q", env.muc.lastInput.ChatID)
	}
	if env.muc.lastInput.GithubUsername != "alice-gh" {
		t.Errorf("github username not parsed: %+v", env.muc.lastInput)
	}
}

func TestHandleRegister_BadRepository(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/register noslash")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "owner/repository")
}

func TestHandleUnregister_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/unregister acme/widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Đã hủy đăng ký thành công")
}

func TestHandleUnregister_NotRegistered(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.unregisterErr = subscription.ErrNotRegistered
	w := sendWebhook(env.engine, "/unregister acme/widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "chưa đăng ký repository")
}

func TestHandleUnregister_NoArgsListsRepos(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.byChat = []model.Subscriber{{Repository: "acme/widget"}, {Repository: "acme/gadget"}}
	w := sendWebhook(env.engine, "/unregister")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "acme/gadget")
}

func TestHandleSettings_Empty(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/settings")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "chưa đăng ký dự án nào")
}

func TestHandleSettings_ShowsFlags(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.byChat = []model.Subscriber{{
		Repository:      "acme/widget",
		GithubUsername:  "alice-gh",
		NotifyOnFailure: true,
		NotifyOnBuild:   true,
	}}
	w := sendWebhook(env.engine, "/settings")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Cài đặt thông báo")
	assertContains(t, *env.capturedMessages, "acme/widget")
}

func TestHandleToggle_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.toggleOut = subscription.ToggleOutput{NewValue: true}
	w := sendWebhook(env.engine, "/toggle_success acme/widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Đã bật thông báo thành công")

	if env.muc.lastKind != model.NotifySuccess {
		t.Errorf("expected NotifySuccess kind, got %v", env.muc.lastKind)
	}
}

func TestHandleToggle_Off(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.toggleOut = subscription.ToggleOutput{NewValue: false}
	w := sendWebhook(env.engine, "/toggle_deploy acme/widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Đã tắt thông báo deploy")
}

func TestHandleToggle_NotRegistered(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.toggleErr = subscription.ErrNotRegistered
	w := sendWebhook(env.engine, "/toggle_failure acme/widget")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Sử dụng /register")
}

func TestHandleProjects(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.projects = []model.Project{
		{Name: "Widget", Repository: "acme/widget", Description: "Main build"},
	}
	w := sendWebhook(env.engine, "/projects")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Danh sách dự án")
	assertContains(t, *env.capturedMessages, "acme/widget")
}

func TestHandleUnregisterChat_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.unregisterChatOut = subscription.UnregisterChatOutput{
		ChatID:  "-42",
		Removed: []model.Subscriber{{Repository: "acme/widget"}},
	}
	w := sendWebhook(env.engine, "/unregister_chat -42")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 2, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Admin Action")
}

func TestHandleListChats_WrongPassword(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/list_chats wrong")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Mật khẩu admin không đúng")
}

func TestHandleListChats_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.muc.all = []model.Subscriber{
		{ChatID: "100", Username: "alice", Repository: "acme/widget"},
		{ChatID: "100", Username: "alice", Repository: "acme/gadget"},
		{ChatID: "-42", Repository: "acme/widget"},
	}
	w := sendWebhook(env.engine, "/list_chats hunter2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Tổng số chats: 2")
}

func TestPlainTextIgnored(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "hello bot")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	time.Sleep(100 * time.Millisecond)
	if len(*env.capturedMessages) != 0 {
		t.Errorf("plain text must not trigger replies, got %v", *env.capturedMessages)
	}
}
