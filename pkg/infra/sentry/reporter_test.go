package sentry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	reporter "github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/sentry"
)

type memoryTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (x *memoryTransport) Configure(options sentry.ClientOptions) {}
func (x *memoryTransport) SendEvent(event *sentry.Event) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.events = append(x.events, event)
}
func (x *memoryTransport) Flush(timeout time.Duration) bool { return true }
func (x *memoryTransport) FlushWithContext(ctx context.Context) bool {
	return true
}
func (x *memoryTransport) Close() {}

func TestReporter_Report(t *testing.T) {
	transport := &memoryTransport{}
	r, err := reporter.New(sentry.ClientOptions{
		Dsn:       "https://public@example.com/1",
		Transport: transport,
	})
	gt.NoError(t, err)

	r.Report(context.Background(), goerr.New("delivery failed", goerr.V("object_kind", "pipeline")))
	gt.True(t, r.Flush())

	gt.Equal(t, len(transport.events), 1)
	values, ok := transport.events[0].Contexts["goerr"]
	gt.True(t, ok)
	gt.Equal(t, values["object_kind"], any("pipeline"))
}

func TestReporter_ReportPlainError(t *testing.T) {
	transport := &memoryTransport{}
	r, err := reporter.New(sentry.ClientOptions{
		Dsn:       "https://public@example.com/1",
		Transport: transport,
	})
	gt.NoError(t, err)

	r.Report(context.Background(), errors.New("plain"))
	gt.True(t, r.Flush())

	gt.Equal(t, len(transport.events), 1)
	_, ok := transport.events[0].Contexts["goerr"]
	gt.False(t, ok)
}

func TestReporter_Nil(t *testing.T) {
	var r *reporter.Reporter
	r.Report(context.Background(), goerr.New("ignored"))
	gt.True(t, r.Flush())
}

func TestNew_EmptyDSN(t *testing.T) {
	_, err := reporter.New(sentry.ClientOptions{})
	gt.Error(t, err)
}
