package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

// UserDirectory holds the path of the GitLab to Slack user mapping file
type UserDirectory struct {
	Path string
}

// Flags returns CLI flags for user directory configuration
func (c *UserDirectory) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user-directory",
			Usage:       "TOML file mapping GitLab users to Slack users",
			Destination: &c.Path,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_USER_DIRECTORY"),
		},
	}
}

// Load reads the file. An empty path gives an empty directory.
func (c *UserDirectory) Load() (*model.UserDirectory, error) {
	if c.Path == "" {
		return model.NewUserDirectory(model.UserDirectoryConfig{})
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open user directory", goerr.V("path", c.Path))
	}
	defer f.Close()

	var cfg model.UserDirectoryConfig
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user directory", goerr.V("path", c.Path))
	}

	dir, err := model.NewUserDirectory(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid user directory", goerr.V("path", c.Path))
	}
	return dir, nil
}
