package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/cli/config"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model/gitlab"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/usecase"
)

func cmdPreview() *cli.Command {
	var (
		input     string
		directory config.UserDirectory
		noColor   bool
	)

	flags := []cli.Flag{
		inputFlag(&input),
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &noColor,
		},
	}

	return &cli.Command{
		Name:  "preview",
		Usage: "Print the Slack message for a webhook payload without sending it",
		Flags: append(flags, directory.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := openInput(input, c.Root().Reader)
			if err != nil {
				return err
			}
			defer r.Close()

			event, err := gitlab.ParseReader(r)
			if err != nil {
				return err
			}

			dir, err := directory.Load()
			if err != nil {
				return err
			}

			msg := usecase.NewFormatter(usecase.WithUserDirectory(dir)).Format(event)

			w := c.Root().Writer
			kind := color.New(color.FgCyan, color.Bold)
			none := color.New(color.FgYellow)
			if noColor {
				kind.DisableColor()
				none.DisableColor()
			}

			_, _ = kind.Fprintf(w, "[%s]\n", event.Kind())
			if msg == nil {
				_, _ = none.Fprintln(w, "(no notification)")
				return nil
			}

			_, _ = fmt.Fprintln(w, msg.Text)
			return nil
		},
	}
}
