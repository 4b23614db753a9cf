package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/cli/config"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/metrics"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/sentry"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/usecase"
)

// webhookDeps groups the configuration shared by serve and handle
type webhookDeps struct {
	slack     config.Slack
	directory config.UserDirectory
	sentry    config.Sentry
}

func (x *webhookDeps) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, x.slack.Flags()...)
	flags = append(flags, x.directory.Flags()...)
	flags = append(flags, x.sentry.Flags()...)
	return flags
}

// build returns the use case and the error reporter to flush before exit
func (x *webhookDeps) build(m *metrics.Collector) (*usecase.Webhook, *sentry.Reporter, error) {
	notifier, err := x.slack.NewNotifier()
	if err != nil {
		return nil, nil, err
	}

	dir, err := x.directory.Load()
	if err != nil {
		return nil, nil, err
	}

	reporter, err := x.sentry.NewReporter()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure sentry")
	}

	uc := usecase.NewWebhook(notifier,
		usecase.WithFormatter(usecase.NewFormatter(usecase.WithUserDirectory(dir))),
		usecase.WithErrorReporter(reporter),
		usecase.WithMetrics(m),
	)
	return uc, reporter, nil
}
