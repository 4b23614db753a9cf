package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/infra/slack"
)

func TestWebhookClient_Notify(t *testing.T) {
	var (
		gotBody        []byte
		gotContentType string
		gotMethod      string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gotBody = body
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client, err := slack.NewWebhookClient(ts.URL)
	gt.NoError(t, err)

	msg := model.NewMarkdownMessage(":tada: merged")
	gt.NoError(t, client.Notify(context.Background(), msg))

	gt.Equal(t, gotMethod, http.MethodPost)
	gt.Equal(t, gotContentType, "application/json")
	gt.Equal(t, string(gotBody), `{"type":"mrkdwn","text":":tada: merged"}`)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(gotBody, &decoded))
	gt.Equal(t, len(decoded), 2)
}

func TestWebhookClient_NotifyFailure(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer ts.Close()

			client, err := slack.NewWebhookClient(ts.URL)
			gt.NoError(t, err)

			err = client.Notify(context.Background(), model.NewMarkdownMessage("x"))
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrDeliveryFailure))
		})
	}
}

func TestWebhookClient_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	client, err := slack.NewWebhookClient(url, slack.WithHTTPClient(&http.Client{}))
	gt.NoError(t, err)

	err = client.Notify(context.Background(), model.NewMarkdownMessage("x"))
	gt.True(t, errors.Is(err, model.ErrDeliveryFailure))
}

func TestNewWebhookClient_EmptyURL(t *testing.T) {
	_, err := slack.NewWebhookClient("")
	gt.Error(t, err)
}
