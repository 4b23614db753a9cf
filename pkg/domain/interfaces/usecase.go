package interfaces

import (
	"context"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

// WebhookUseCase handles one GitLab webhook payload per call
type WebhookUseCase interface {
	// HandleEvent never fails; failures are reported in the returned status
	HandleEvent(ctx context.Context, payload []byte) *model.HandleStatus
}
