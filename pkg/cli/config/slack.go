package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/interfaces"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/slack"
)

// Slack holds Slack delivery configuration. Either WebhookURL or a pair of
// Token and Channel is required; the Web API is used when both are set.
type Slack struct {
	WebhookURL string `masq:"secret"`
	Token      string `masq:"secret"`
	Channel    string
	APIURL     string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for chat.postMessage",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SLACK_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post with --slack-token",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SLACK_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API endpoint (for testing)",
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITLAB_NOTIFIER_SLACK_API_URL"),
			Hidden:      true,
		},
	}
}

// NewNotifier builds the Slack client selected by the configuration
func (c *Slack) NewNotifier() (interfaces.Notifier, error) {
	switch {
	case c.Token != "" || c.Channel != "":
		var opts []slack.APIOption
		if c.APIURL != "" {
			opts = append(opts, slack.WithAPIURL(c.APIURL))
		}
		client, err := slack.NewAPIClient(c.Token, c.Channel, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure slack API client")
		}
		return client, nil

	case c.WebhookURL != "":
		client, err := slack.NewWebhookClient(c.WebhookURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure slack webhook client")
		}
		return client, nil

	default:
		return nil, goerr.New("slack webhook URL or slack token and channel are required")
	}
}
