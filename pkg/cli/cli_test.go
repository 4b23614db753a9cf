package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/cli"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
)

func fixturePath(name string) string {
	return filepath.Join("..", "domain", "model", "gitlab", "testdata", name)
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	app := cli.New()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)

	err := app.Run(context.Background(), append([]string{"gitlab-slack-notifier", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestHandle(t *testing.T) {
	var received []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = append(received, string(body))
	}))
	defer ts.Close()

	out, err := runApp(t, "", "handle", "--slack-webhook-url", ts.URL, "--input", fixturePath("pipeline-failed.json"))
	gt.NoError(t, err)

	var status model.HandleStatus
	gt.NoError(t, json.Unmarshal([]byte(out), &status))
	gt.Equal(t, status.Status, model.HandleStatusSent)
	gt.Equal(t, len(received), 1)
	gt.String(t, received[0]).Contains(`"type":"mrkdwn"`)
}

func TestHandle_Stdin(t *testing.T) {
	out, err := runApp(t, `{"object_kind":"deployment"}`, "handle", "--slack-webhook-url", "http://127.0.0.1:1")
	gt.NoError(t, err)

	var status model.HandleStatus
	gt.NoError(t, json.Unmarshal([]byte(out), &status))
	gt.Equal(t, status.Status, model.HandleStatusError)
	gt.String(t, status.Error).Contains("deployment")
}

func TestHandle_NoSlackConfig(t *testing.T) {
	_, err := runApp(t, "{}", "handle")
	gt.Error(t, err)
}

func TestPreview(t *testing.T) {
	out, err := runApp(t, "", "preview", "--no-color", "--input", fixturePath("mr-merge.json"))
	gt.NoError(t, err)
	gt.String(t, out).Contains("[merge_request]")
	gt.String(t, out).Contains(":tada: LechuckRoh merged <https://gitlab.com/lechuckroh/gitlab-slack-notifier/-/merge_requests/1|gitlab-slack-notifier MR !1> *Rust Lambda*.")
}

func TestPreview_NoNotification(t *testing.T) {
	out, err := runApp(t, "", "preview", "--no-color", "--input", fixturePath("push.json"))
	gt.NoError(t, err)
	gt.String(t, out).Contains("[push]")
	gt.String(t, out).Contains("(no notification)")
}

func TestPreview_Malformed(t *testing.T) {
	_, err := runApp(t, `{"object_kind":"pipeline"}`, "preview")
	gt.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	app := cli.New()
	app.Writer = io.Discard
	err := app.Run(context.Background(), []string{"gitlab-slack-notifier", "--log-level", "verbose", "preview"})
	gt.Error(t, err)
}

func TestPreview_Stdin(t *testing.T) {
	payload, err := os.ReadFile(fixturePath("pipeline-failed.json"))
	gt.NoError(t, err)

	out, err := runApp(t, string(payload), "preview", "--no-color")
	gt.NoError(t, err)
	gt.String(t, out).Contains("[pipeline]")
	gt.String(t, out).Contains(":fire: Admin Build pipeline failed on ")
}
