package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/interfaces"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model/gitlab"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/metrics"
)

// Webhook parses a GitLab payload, formats it and delivers the message
type Webhook struct {
	formatter *Formatter
	notifier  interfaces.Notifier
	reporter  interfaces.ErrorReporter
	metrics   *metrics.Collector
}

type WebhookOption func(*Webhook)

func WithFormatter(formatter *Formatter) WebhookOption {
	return func(uc *Webhook) {
		uc.formatter = formatter
	}
}

func WithErrorReporter(reporter interfaces.ErrorReporter) WebhookOption {
	return func(uc *Webhook) {
		uc.reporter = reporter
	}
}

func WithMetrics(m *metrics.Collector) WebhookOption {
	return func(uc *Webhook) {
		uc.metrics = m
	}
}

// NewWebhook creates a new instance of Webhook. notifier may be nil, in which
// case formatted messages are returned as sent without delivery.
func NewWebhook(notifier interfaces.Notifier, opts ...WebhookOption) *Webhook {
	uc := &Webhook{
		formatter: NewFormatter(),
		notifier:  notifier,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// HandleEvent processes one payload and reports the outcome as a status
func (uc *Webhook) HandleEvent(ctx context.Context, payload []byte) *model.HandleStatus {
	logger := ctxlog.From(ctx).With("invocation_id", uuid.NewString())
	ctx = ctxlog.With(ctx, logger)

	event, err := gitlab.Parse(payload)
	if err != nil {
		switch {
		case errors.Is(err, gitlab.ErrUnrecognizedEventKind):
			logger.Warn("Unrecognized GitLab event", "error", err)
		default:
			logger.Warn("Malformed GitLab payload", "error", err)
		}
		return uc.fail(ctx, "", err)
	}

	kind := string(event.Kind())
	logger = logger.With("object_kind", kind)
	ctx = ctxlog.With(ctx, logger)

	msg := uc.formatter.Format(event)
	if msg == nil {
		logger.Debug("No notification for event")
		uc.metrics.ObserveEvent(kind, string(model.HandleStatusIgnored))
		return model.NewIgnoredStatus()
	}

	if uc.notifier != nil {
		start := time.Now()
		err := uc.notifier.Notify(ctx, msg)
		uc.metrics.ObserveDelivery(time.Since(start), err)
		if err != nil {
			logger.Error("Failed to deliver notification", "error", err)
			return uc.fail(ctx, kind, err)
		}
	}

	logger.Info("Notification sent", "text", msg.Text)
	uc.metrics.ObserveEvent(kind, string(model.HandleStatusSent))
	return model.NewSentStatus(msg)
}

func (uc *Webhook) fail(ctx context.Context, kind string, err error) *model.HandleStatus {
	uc.metrics.ObserveEvent(kind, string(model.HandleStatusError))
	if uc.reporter != nil {
		uc.reporter.Report(ctx, err)
	}
	return model.NewErrorStatus(err)
}
