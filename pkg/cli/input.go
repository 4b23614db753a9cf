package cli

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func inputFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "Webhook payload file, '-' for stdin",
		Value:       "-",
		Destination: dst,
	}
}

// openInput opens path, or returns stdin when path is "-"
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open payload", goerr.V("path", path))
	}
	return f, nil
}

// readInput reads the whole payload of openInput
func readInput(path string, stdin io.Reader) ([]byte, error) {
	r, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload", goerr.V("path", path))
	}
	return data, nil
}
