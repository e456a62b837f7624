package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cicd-telegram-notifier/internal/notification"
	pkgResponse "cicd-telegram-notifier/pkg/response"
)

// HandleGitHubWebhook ingests one workflow-run event. Processing is
// synchronous: the response reports what was delivered and audited.
// @Summary Ingest a CI/CD workflow event
// @Tags webhook
// @Accept json
// @Produce json
// @Param payload body notification.WebhookPayload true "Workflow event"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /webhook/github [post]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook reject IP: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook rate limited: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook signature: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload notification.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook decode: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.notificationUC.Dispatch(ctx, payload)
	if err != nil {
		if verr, ok := notification.AsValidationError(err); ok {
			pkgResponse.Error(c, verr, map[string]interface{}{
				"violations": verr.Violations,
			})
			return
		}
		h.l.Errorf(ctx, "webhook.HandleGitHubWebhook dispatch: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	if out.Skipped {
		pkgResponse.OK(c, gin.H{
			"status": "skipped",
			"reason": out.SkipReason,
		})
		return
	}

	pkgResponse.OK(c, gin.H{
		"status":    "processed",
		"project":   out.ProjectName,
		"delivered": out.Delivered(),
		"attempted": len(out.Outcomes),
		"audited":   out.AuditRecorded,
		"jobs_summary": gin.H{
			"total":       out.JobCounts.Total,
			"success":     out.JobCounts.Success,
			"failure":     out.JobCounts.Failure,
			"in_progress": out.JobCounts.InProgress,
			"cancelled":   out.JobCounts.Cancelled,
			"skipped":     out.JobCounts.Skipped,
		},
	})
}

// ListWebhooks returns a newest-first page of processed-event history.
// @Summary List processed webhook events
// @Tags webhook
// @Produce json
// @Param project_id query string false "Filter by project"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Resp
// @Router /api/v1/webhooks [get]
func (h *Handler) ListWebhooks(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	out, err := h.notificationUC.History(ctx, notification.ListWebhooksInput{
		ProjectID: c.Query("project_id"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook.ListWebhooks: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	items := make([]gin.H, 0, len(out.Webhooks))
	for _, w := range out.Webhooks {
		items = append(items, gin.H{
			"id":             w.ID,
			"project_id":     w.ProjectID,
			"workflow_name":  w.WorkflowName,
			"run_id":         w.RunID,
			"run_url":        w.RunURL,
			"status":         w.Status,
			"branch":         w.Branch,
			"commit_sha":     w.CommitSHA,
			"commit_message": w.CommitMessage,
			"actor":          w.Actor,
			"created_at":     w.CreatedAt,
		})
	}

	pkgResponse.OK(c, gin.H{
		"webhooks": items,
		"total":    out.Total,
		"limit":    out.Limit,
		"offset":   out.Offset,
	})
}
