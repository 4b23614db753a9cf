// Package sentry reports invocation errors to Sentry
package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const flushTimeout = 2 * time.Second

// Reporter sends errors with the Sentry hub it was created with
type Reporter struct {
	hub *sentry.Hub
}

// New initializes a Sentry client. Options are passed as is, so tests can set
// a Transport.
func New(opts sentry.ClientOptions) (*Reporter, error) {
	if opts.Dsn == "" {
		return nil, goerr.New("sentry DSN is required")
	}

	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sentry client")
	}

	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures err with the goerr values attached as the "goerr" context
func (x *Reporter) Report(ctx context.Context, err error) {
	if x == nil || err == nil {
		return
	}

	hub := x.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		if ge := goerr.Unwrap(err); ge != nil {
			values := sentry.Context{}
			for k, v := range ge.Values() {
				values[k] = v
			}
			scope.SetContext("goerr", values)
		}

		evID := hub.CaptureException(err)
		if evID != nil {
			ctxlog.From(ctx).Info("error reported to sentry", "event_id", *evID)
		}
	})
}

// Flush waits for buffered events to be sent
func (x *Reporter) Flush() bool {
	if x == nil {
		return true
	}
	return x.hub.Flush(flushTimeout)
}
