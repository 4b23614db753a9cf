package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/types"
	reporter "github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/sentry"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report errors",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Destination: &c.Env,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SENTRY_ENV"),
		},
	}
}

// NewReporter returns nil without error if DSN is not set
func (c *Sentry) NewReporter() (*reporter.Reporter, error) {
	if c.DSN == "" {
		return nil, nil
	}

	return reporter.New(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     types.Version,
	})
}
