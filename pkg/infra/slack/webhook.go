// Package slack delivers notification messages to Slack
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

// WebhookClient posts messages to a Slack incoming webhook URL
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

type WebhookOption func(*WebhookClient)

func WithHTTPClient(client *http.Client) WebhookOption {
	return func(c *WebhookClient) {
		c.httpClient = client
	}
}

func NewWebhookClient(url string, opts ...WebhookOption) (*WebhookClient, error) {
	if url == "" {
		return nil, goerr.New("slack webhook URL is required")
	}

	c := &WebhookClient{
		url:        url,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Notify sends msg as {"type":"mrkdwn","text":...}. Any non-2xx response is
// a model.ErrDeliveryFailure.
func (c *WebhookClient) Notify(ctx context.Context, msg *model.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal slack message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create slack webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrDeliveryFailure, err.Error())
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &slack.StatusCodeError{Code: resp.StatusCode, Status: resp.Status}
		return goerr.Wrap(model.ErrDeliveryFailure, statusErr.Error(),
			goerr.V("status_code", resp.StatusCode),
			goerr.V("cause", statusErr),
		)
	}

	return nil
}
