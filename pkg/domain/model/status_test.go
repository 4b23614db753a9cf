package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

func TestHandleStatus_JSON(t *testing.T) {
	testCases := []struct {
		name   string
		status *model.HandleStatus
		want   string
	}{
		{
			name:   "ignored",
			status: model.NewIgnoredStatus(),
			want:   `{"status":"ignored"}`,
		},
		{
			name:   "sent",
			status: model.NewSentStatus(model.NewMarkdownMessage("hello")),
			want:   `{"status":"sent","message":{"type":"mrkdwn","text":"hello"}}`,
		},
		{
			name:   "error",
			status: model.NewErrorStatus(goerr.New("boom")),
			want:   `{"status":"error","error":"boom"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.status)
			gt.NoError(t, err)
			gt.Equal(t, string(raw), tc.want)
		})
	}
}
