package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/model"
	"cicd-telegram-notifier/internal/subscription"
	pkgLog "cicd-telegram-notifier/pkg/log"
	pkgResponse "cicd-telegram-notifier/pkg/response"
	pkgTelegram "cicd-telegram-notifier/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  subscription.UseCase
	bot *pkgTelegram.Bot
	cfg Config
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the command in a
// background goroutine so slow database work never trips Telegram's webhook
// timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled after the response.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			chatID := strconv.FormatInt(msg.Chat.ID, 10)
			_ = h.bot.SendMessage(bgCtx, chatID, "❌ Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage routes a single Telegram message to its command handler.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" || !strings.HasPrefix(msg.Text, "/") {
		return nil
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	var username string
	if msg.From != nil {
		username = msg.From.Username
	}

	fields := strings.Fields(msg.Text)
	// Group chats address commands as /cmd@botname.
	command := strings.SplitN(fields[0], "@", 2)[0]
	args := fields[1:]

	switch command {
	case "/start":
		return h.bot.SendMessage(ctx, chatID,
			"🤖 Chào mừng đến với CI/CD Notification Bot!\n\n"+
				"Sử dụng các lệnh sau:\n"+
				"/register - Đăng ký nhận thông báo\n"+
				"/settings - Cài đặt thông báo\n"+
				"/projects - Xem danh sách dự án\n"+
				"/help - Xem trợ giúp",
		)
	case "/help":
		return h.handleHelp(ctx, chatID)
	case "/register":
		return h.handleRegister(ctx, chatID, username, msg.Chat.Type, args)
	case "/unregister":
		return h.handleUnregister(ctx, chatID, args)
	case "/settings":
		return h.handleSettings(ctx, chatID)
	case "/projects":
		return h.handleProjects(ctx, chatID)
	case "/unregister_chat":
		return h.handleUnregisterChat(ctx, chatID, args)
	case "/list_chats":
		return h.handleListChats(ctx, chatID, username, args)
	}

	if kind, ok := toggleKind(command); ok {
		return h.handleToggle(ctx, chatID, command, kind, args)
	}

	// Unknown commands are ignored, same as plain text.
	return nil
}

func (h *handler) handleHelp(ctx context.Context, chatID string) error {
	helpText := `📖 *Trợ giúp - CI/CD Notification Bot*

🤖 *Lệnh cơ bản:*
/start - Khởi động bot
/register - Đăng ký nhận thông báo
/unregister - Hủy đăng ký repository
/settings - Xem cài đặt thông báo
/projects - Xem danh sách dự án

⚙️ *Cài đặt thông báo:*
/toggle\_success - Bật/tắt thông báo thành công
/toggle\_failure - Bật/tắt thông báo thất bại
/toggle\_build - Bật/tắt thông báo build
/toggle\_deploy - Bật/tắt thông báo deploy
/toggle\_test - Bật/tắt thông báo test

🔐 *Admin commands:*
/unregister\_chat - Hủy toàn bộ đăng ký của một chat

📞 *Hỗ trợ:* Liên hệ admin nếu có vấn đề.`

	return h.bot.SendMessageWithMode(ctx, chatID, helpText, "Markdown")
}

func (h *handler) handleRegister(ctx context.Context, chatID, username, chatType string, args []string) error {
	if len(args) < 1 {
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Cách sử dụng không đúng!\n\n"+
				"✅ Cách dùng:\n"+
				"• `/register <repository>` - Đăng ký cho chat này\n"+
				"• `/register <repository> <github_username>` - Đăng ký cá nhân\n\n"+
				"Ví dụ:\n"+
				"`/register username/my-repo` (cho group/channel)\n"+
				"`/register username/my-repo myusername` (cá nhân)\n\n"+
				"📝 Repository format: `owner/repo`",
			"Markdown",
		)
	}

	repository := args[0]
	var githubUsername string
	if len(args) > 1 {
		githubUsername = args[1]
	}

	out, err := h.uc.Register(ctx, subscription.RegisterInput{
		ChatID:         chatID,
		Username:       username,
		GithubUsername: githubUsername,
		Repository:     repository,
	})
	if errors.Is(err, subscription.ErrInvalidRepository) {
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Repository phải có format: `owner/repository`\nVí dụ: `username/my-repo`",
			"Markdown",
		)
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Register failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi đăng ký. Vui lòng thử lại.")
	}

	chatInfo := "chat cá nhân"
	switch chatType {
	case "group":
		chatInfo = "group"
	case "supergroup":
		chatInfo = "supergroup"
	case "channel":
		chatInfo = "channel"
	}

	var reply strings.Builder
	reply.WriteString("✅ Đăng ký thành công!\n\n")
	fmt.Fprintf(&reply, "📂 Repository: `%s`\n", repository)
	if githubUsername != "" {
		fmt.Fprintf(&reply, "👤 GitHub Username: `%s`\n", githubUsername)
	}
	fmt.Fprintf(&reply, "💬 Chat Type: %s\n", chatInfo)
	fmt.Fprintf(&reply, "🆔 Chat ID: `%s`\n\n", chatID)
	who := "Chat này"
	if chatType == "private" && githubUsername != "" {
		who = "Bạn"
	}
	fmt.Fprintf(&reply, "🔔 %s sẽ nhận được thông báo CI/CD cho repository này.\n", who)
	reply.WriteString("⚙️ Sử dụng /settings để xem tất cả dự án đã đăng ký.")
	if out.ProjectCreated {
		h.l.Infof(ctx, "telegram handler: project %s auto-created via /register", out.Project.ID)
	}

	return h.bot.SendMessageWithMode(ctx, chatID, reply.String(), "Markdown")
}

func (h *handler) handleUnregister(ctx context.Context, chatID string, args []string) error {
	if len(args) < 1 {
		subs, err := h.uc.ListByChat(ctx, chatID)
		if err != nil {
			return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi lấy danh sách repository.")
		}
		if len(subs) == 0 {
			return h.bot.SendMessage(ctx, chatID, "❌ Bạn chưa đăng ký dự án nào.")
		}
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Vui lòng chỉ định repository để hủy đăng ký!\n\n"+
				"Cách dùng: `/unregister <repository>`\n\n"+
				"Các repository của bạn:\n"+repoBullets(subs),
			"Markdown",
		)
	}

	repository := args[0]
	err := h.uc.Unregister(ctx, chatID, repository)
	if errors.Is(err, subscription.ErrNotRegistered) {
		return h.bot.SendMessageWithMode(ctx, chatID,
			fmt.Sprintf("❌ Bạn chưa đăng ký repository `%s`.", repository), "Markdown")
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Unregister failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi hủy đăng ký.")
	}

	return h.bot.SendMessageWithMode(ctx, chatID,
		fmt.Sprintf("✅ Đã hủy đăng ký thành công khỏi repository `%s`.", repository), "Markdown")
}

func (h *handler) handleSettings(ctx context.Context, chatID string) error {
	subs, err := h.uc.ListByChat(ctx, chatID)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ListByChat failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi lấy cài đặt.")
	}

	if len(subs) == 0 {
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Bạn chưa đăng ký dự án nào.\n\n"+
				"Sử dụng: `/register <repository> <github_username>`\n"+
				"Ví dụ: `/register username/my-repo myusername`",
			"Markdown",
		)
	}

	var b strings.Builder
	b.WriteString("⚙️ *Cài đặt thông báo của bạn:*\n\n")
	fmt.Fprintf(&b, "👤 *GitHub Username:* `%s`\n", orDefault(subs[0].GithubUsername, "Chưa thiết lập"))
	fmt.Fprintf(&b, "💬 *Chat ID:* `%s`\n\n", chatID)
	fmt.Fprintf(&b, "📂 *Các dự án đã đăng ký (%d):*\n", len(subs))

	for i, s := range subs {
		fmt.Fprintf(&b, "\n%d. *%s*\n", i+1, s.Repository)
		fmt.Fprintf(&b, "   • Thành công: %s\n", onOff(s.NotifyOnSuccess))
		fmt.Fprintf(&b, "   • Thất bại: %s\n", onOff(s.NotifyOnFailure))
		fmt.Fprintf(&b, "   • Build: %s\n", onOff(s.NotifyOnBuild))
		fmt.Fprintf(&b, "   • Deploy: %s\n", onOff(s.NotifyOnDeploy))
		fmt.Fprintf(&b, "   • Test: %s\n", onOff(s.NotifyOnTest))
	}

	b.WriteString("\n💡 *Để thay đổi cài đặt cho dự án cụ thể:*\n")
	b.WriteString("Sử dụng: `/toggle_<setting> <repository>`\n")
	b.WriteString("Ví dụ: `/toggle_success username/my-repo`")

	return h.bot.SendMessageWithMode(ctx, chatID, b.String(), "Markdown")
}

func (h *handler) handleProjects(ctx context.Context, chatID string) error {
	projects, err := h.uc.ListProjects(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ListProjects failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi lấy danh sách dự án.")
	}

	if len(projects) == 0 {
		return h.bot.SendMessage(ctx, chatID, "📋 Chưa có dự án nào được thiết lập.")
	}

	lines := make([]string, 0, len(projects))
	for i, p := range projects {
		lines = append(lines, fmt.Sprintf("%d. *%s*\n   📂 %s\n   %s",
			i+1, p.Name, p.Repository, orDefault(p.Description, "Không có mô tả")))
	}

	return h.bot.SendMessageWithMode(ctx, chatID,
		"📋 *Danh sách dự án:*\n\n"+strings.Join(lines, "\n\n"), "Markdown")
}

func (h *handler) handleToggle(ctx context.Context, chatID, command string, kind model.NotifyKind, args []string) error {
	if len(args) < 1 {
		subs, err := h.uc.ListByChat(ctx, chatID)
		if err != nil {
			return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi lấy danh sách repository.")
		}
		if len(subs) == 0 {
			return h.bot.SendMessage(ctx, chatID, "❌ Bạn chưa đăng ký dự án nào. Sử dụng /register để đăng ký.")
		}
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Vui lòng chỉ định repository!\n\n"+
				fmt.Sprintf("Cách dùng: `%s <repository>`\n\n", command)+
				"Các repository của bạn:\n"+repoBullets(subs),
			"Markdown",
		)
	}

	repository := args[0]
	out, err := h.uc.Toggle(ctx, subscription.ToggleInput{
		ChatID:     chatID,
		Repository: repository,
		Kind:       kind,
	})
	if errors.Is(err, subscription.ErrNotRegistered) {
		return h.bot.SendMessageWithMode(ctx, chatID,
			fmt.Sprintf("❌ Bạn chưa đăng ký repository `%s`. Sử dụng /register để đăng ký.", repository),
			"Markdown",
		)
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Toggle failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi thay đổi cài đặt.")
	}

	action := "tắt"
	if out.NewValue {
		action = "bật"
	}
	return h.bot.SendMessageWithMode(ctx, chatID,
		fmt.Sprintf("✅ Đã %s thông báo %s cho repository `%s`.", action, toggleLabel(kind), repository),
		"Markdown",
	)
}

func (h *handler) handleUnregisterChat(ctx context.Context, chatID string, args []string) error {
	if len(args) < 1 {
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ Vui lòng chỉ định Chat ID!\n\n"+
				"Cách dùng: `/unregister_chat <chatId>`\n\n"+
				"Ví dụ: `/unregister_chat -123456789`\n\n"+
				"⚠️ *Cảnh báo:* Lệnh này sẽ hủy đăng ký TOÀN BỘ notifications của chat đó.",
			"Markdown",
		)
	}

	targetChatID := args[0]
	out, err := h.uc.UnregisterChat(ctx, targetChatID)
	if errors.Is(err, subscription.ErrNothingToDelete) {
		return h.bot.SendMessageWithMode(ctx, chatID,
			fmt.Sprintf("❌ Không tìm thấy đăng ký nào cho Chat ID: `%s`", targetChatID), "Markdown")
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: UnregisterChat failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi hủy đăng ký chat.")
	}

	if err := h.bot.SendMessageWithMode(ctx, chatID,
		"✅ *Admin Action: Đã hủy đăng ký thành công!*\n\n"+
			fmt.Sprintf("🆔 Chat ID: `%s`\n", targetChatID)+
			fmt.Sprintf("📊 Số lượng: %d đăng ký\n\n", len(out.Removed))+
			"📂 *Repositories đã hủy:*\n"+repoBullets(out.Removed),
		"Markdown",
	); err != nil {
		return err
	}

	// Best-effort notification to the wiped chat; the bot may have been removed.
	if err := h.bot.SendMessageWithMode(ctx, targetChatID,
		"⚠️ *Thông báo:*\n\nToàn bộ đăng ký CI/CD notification của chat này đã bị hủy bởi admin.\n\n"+
			"Nếu muốn tiếp tục nhận thông báo, vui lòng đăng ký lại bằng lệnh /register",
		"Markdown",
	); err != nil {
		h.l.Warnf(ctx, "telegram handler: could not notify wiped chat %s: %v", targetChatID, err)
	}

	return nil
}

func (h *handler) handleListChats(ctx context.Context, chatID, username string, args []string) error {
	if len(args) < 1 {
		return h.bot.SendMessageWithMode(ctx, chatID,
			"🔐 *Admin Command - Yêu cầu xác thực*\n\n"+
				"Cách dùng: `/list_chats <admin_password>`\n\n"+
				"⚠️ Lệnh này chỉ dành cho admin.",
			"Markdown",
		)
	}

	if h.cfg.AdminPassword == "" || args[0] != h.cfg.AdminPassword {
		h.l.Warnf(ctx, "telegram handler: unauthorized /list_chats attempt from chat %s by %s", chatID, orDefault(username, "unknown"))
		return h.bot.SendMessageWithMode(ctx, chatID,
			"❌ *Mật khẩu admin không đúng!*\n\n🚫 Truy cập bị từ chối.", "Markdown")
	}

	subs, err := h.uc.ListAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: ListAll failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, "❌ Đã xảy ra lỗi khi lấy danh sách chats.")
	}

	if len(subs) == 0 {
		return h.bot.SendMessage(ctx, chatID, "📋 Chưa có chat nào đăng ký nhận thông báo.")
	}

	// Group per chat, keeping the store's (chat_id, repository) order.
	order := make([]string, 0)
	grouped := make(map[string][]model.Subscriber)
	for _, s := range subs {
		if _, ok := grouped[s.ChatID]; !ok {
			order = append(order, s.ChatID)
		}
		grouped[s.ChatID] = append(grouped[s.ChatID], s)
	}

	var b strings.Builder
	b.WriteString("🔐 *Admin Panel - Danh sách chats đã đăng ký:*\n\n")
	fmt.Fprintf(&b, "👥 Tổng số chats: %d\n", len(order))
	fmt.Fprintf(&b, "📊 Tổng số đăng ký: %d\n\n", len(subs))

	for _, id := range order {
		group := grouped[id]
		fmt.Fprintf(&b, "🆔 *Chat ID:* `%s`\n", id)
		owner := group[0].GithubUsername
		if owner == "" {
			owner = group[0].Username
		}
		fmt.Fprintf(&b, "👤 *User:* %s\n", orDefault(owner, "N/A"))
		fmt.Fprintf(&b, "📂 *Repositories (%d):*\n", len(group))
		for _, s := range group {
			fmt.Fprintf(&b, "   • %s\n", s.Repository)
		}
		b.WriteString("\n")
	}

	// Telegram caps messages at 4096 chars; split long admin reports.
	for _, part := range splitMessage(b.String(), 4000) {
		if err := h.bot.SendMessageWithMode(ctx, chatID, part, "Markdown"); err != nil {
			return err
		}
	}

	h.l.Infof(ctx, "telegram handler: admin accessed /list_chats from chat %s by %s", chatID, orDefault(username, "unknown"))
	return nil
}

func toggleKind(command string) (model.NotifyKind, bool) {
	switch command {
	case "/toggle_success":
		return model.NotifySuccess, true
	case "/toggle_failure":
		return model.NotifyFailure, true
	case "/toggle_build":
		return model.NotifyBuild, true
	case "/toggle_deploy":
		return model.NotifyDeploy, true
	case "/toggle_test":
		return model.NotifyTest, true
	}
	return 0, false
}

func toggleLabel(kind model.NotifyKind) string {
	switch kind {
	case model.NotifySuccess:
		return "thành công"
	case model.NotifyFailure:
		return "thất bại"
	default:
		return kind.String()
	}
}

func repoBullets(subs []model.Subscriber) string {
	lines := make([]string, 0, len(subs))
	for _, s := range subs {
		lines = append(lines, fmt.Sprintf("• `%s`", s.Repository))
	}
	return strings.Join(lines, "\n")
}

func onOff(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var parts []string
	for len(text) > limit {
		parts = append(parts, text[:limit])
		text = text[limit:]
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}
