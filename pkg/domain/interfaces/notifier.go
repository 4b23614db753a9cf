package interfaces

import (
	"context"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

// Notifier delivers a formatted message to the chat endpoint
type Notifier interface {
	Notify(ctx context.Context, msg *model.Message) error
}

// ErrorReporter sends invocation errors to an external tracker
type ErrorReporter interface {
	Report(ctx context.Context, err error)
}
