package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/cli/config"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := New().Run(ctx, args); err != nil {
		// slog.Default() is the configured logger once Before has run
		slog.Default().Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

// New builds the root command
func New() *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    model.ServiceName,
		Usage:   "Notify GitLab webhook events to Slack",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdHandle(),
			cmdPreview(),
		},
	}
}
