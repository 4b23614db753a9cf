package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

// APIClient posts messages with chat.postMessage of the Slack Web API
type APIClient struct {
	client  *slack.Client
	channel string
}

type APIOption func(*apiConfig)

type apiConfig struct {
	apiURL string
}

// WithAPIURL replaces the Slack Web API endpoint, e.g. for a test server
func WithAPIURL(url string) APIOption {
	return func(c *apiConfig) {
		c.apiURL = url
	}
}

func NewAPIClient(token, channel string, opts ...APIOption) (*APIClient, error) {
	if token == "" {
		return nil, goerr.New("slack token is required")
	}
	if channel == "" {
		return nil, goerr.New("slack channel is required")
	}

	var cfg apiConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var slackOpts []slack.Option
	if cfg.apiURL != "" {
		slackOpts = append(slackOpts, slack.OptionAPIURL(cfg.apiURL))
	}

	return &APIClient{
		client:  slack.New(token, slackOpts...),
		channel: channel,
	}, nil
}

func (c *APIClient) Notify(ctx context.Context, msg *model.Message) error {
	_, _, err := c.client.PostMessageContext(ctx, c.channel,
		slack.MsgOptionText(msg.Text, false),
	)
	if err != nil {
		return goerr.Wrap(model.ErrDeliveryFailure, err.Error(), goerr.V("channel", c.channel))
	}
	return nil
}
