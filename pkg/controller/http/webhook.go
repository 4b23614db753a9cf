package http

import (
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/interfaces"
)

// WebhookHandler handles GitLab webhooks
type WebhookHandler struct {
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: webhookUC,
	}
}

// Handle processes webhook requests. Any handling status, including error, is
// returned with 200.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if event := r.Header.Get("X-Gitlab-Event"); event != "" {
		logger = logger.With("gitlab_event", event)
		ctx = ctxlog.With(ctx, logger)
	}

	status := h.webhookUC.HandleEvent(ctx, body)
	writeJSON(ctx, w, status, http.StatusOK)
}
