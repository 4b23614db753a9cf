package cli

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdHandle() *cli.Command {
	var (
		input string
		deps  webhookDeps
	)

	return &cli.Command{
		Name:  "handle",
		Usage: "Handle one webhook payload and print the status as JSON",
		Flags: append([]cli.Flag{inputFlag(&input)}, deps.flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			payload, err := readInput(input, c.Root().Reader)
			if err != nil {
				return err
			}

			uc, reporter, err := deps.build(nil)
			if err != nil {
				return err
			}
			defer reporter.Flush()

			status := uc.HandleEvent(ctx, payload)

			if err := json.NewEncoder(c.Root().Writer).Encode(status); err != nil {
				return goerr.Wrap(err, "failed to write status")
			}
			return nil
		},
	}
}
