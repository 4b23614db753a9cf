package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model"
	"github.com/m-mizutani/gitlab-slack-notifier/pkg/domain/model/gitlab"
)

// Formatter builds Slack messages from GitLab events. It holds no mutable state
// and can be shared between goroutines.
type Formatter struct {
	users *model.UserDirectory
}

type FormatterOption func(*Formatter)

// WithUserDirectory renders GitLab users with their Slack names or mentions
func WithUserDirectory(users *model.UserDirectory) FormatterOption {
	return func(f *Formatter) {
		f.users = users
	}
}

func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format returns the message for ev, or nil when ev is not notified
func (f *Formatter) Format(ev gitlab.Event) *model.Message {
	var text string
	switch e := ev.(type) {
	case *gitlab.MergeRequestEvent:
		text = f.formatMergeRequest(e)
	case *gitlab.PipelineEvent:
		text = f.formatPipeline(e)
	case *gitlab.IssueEvent, *gitlab.NoteEvent, *gitlab.PushEvent, *gitlab.TagPushEvent, *gitlab.WikiPageEvent:
		return nil
	default:
		return nil
	}

	if text == "" {
		return nil
	}
	return model.NewMarkdownMessage(text)
}

func (f *Formatter) formatMergeRequest(e *gitlab.MergeRequestEvent) string {
	attrs := e.ObjectAttributes
	if attrs.Action == nil {
		return ""
	}

	actor := f.users.Name(e.User.ID, e.User.Name)
	link := fmt.Sprintf("<%s|%s MR !%d>", attrs.URL, e.Project.Name, attrs.IID)

	// "{author}'s " when someone other than the author acted
	authorOf := func(rule model.MentionRule) string {
		if e.User.ID == attrs.AuthorID {
			return ""
		}
		return f.users.DisplayName(attrs.AuthorID, strconv.FormatInt(attrs.AuthorID, 10), rule) + "'s "
	}

	switch *attrs.Action {
	case gitlab.MergeRequestActionApprove:
		return fmt.Sprintf(":white_check_mark: %s approved %s%s *%s*.",
			actor, authorOf(model.MentionOnApproved), link, attrs.Title)

	case gitlab.MergeRequestActionClose:
		return fmt.Sprintf(":no_entry: %s closed %s *%s*.", actor, link, attrs.Title)

	case gitlab.MergeRequestActionMerge:
		return fmt.Sprintf(":tada: %s merged %s%s *%s*.",
			actor, authorOf(model.MentionOnMerged), link, attrs.Title)

	case gitlab.MergeRequestActionOpen:
		return fmt.Sprintf(":blush: %s opened %s *%s*%s.\n`%s` → `%s`",
			actor, link, attrs.Title, formatLabels(attrs.Labels), attrs.SourceBranch, attrs.TargetBranch)

	case gitlab.MergeRequestActionUnapprove:
		return fmt.Sprintf("%s unapproved %s%s *%s*.",
			actor, authorOf(model.MentionOnUnapproved), link, attrs.Title)

	// "approved" follows "approve" once all required approvals are given
	case gitlab.MergeRequestActionApproved, gitlab.MergeRequestActionReopen, gitlab.MergeRequestActionUpdate:
		return ""

	default:
		return ""
	}
}

func formatLabels(labels []gitlab.Label) string {
	if len(labels) == 0 {
		return ""
	}

	titles := make([]string, len(labels))
	for i, label := range labels {
		titles[i] = "`" + label.Title + "`"
	}
	return "[" + strings.Join(titles, ", ") + "]"
}

func (f *Formatter) formatPipeline(e *gitlab.PipelineEvent) string {
	if e.ObjectAttributes.Status != gitlab.PipelineStatusFailed {
		return ""
	}

	var actor string
	if e.MergeRequest != nil {
		actor = f.users.DisplayName(e.User.ID, e.User.Name, model.MentionOnPipelineFailed)
	}

	commitTitle := e.Commit.Message
	if e.Commit.Title != nil {
		commitTitle = *e.Commit.Title
	}

	return fmt.Sprintf(":fire: %s Build pipeline failed on <%s|%s project> `%s`.\n- `%s<%s>` *%s*",
		actor,
		e.Project.WebURL,
		e.Project.Name,
		e.ObjectAttributes.Ref,
		e.Commit.Author.Name,
		e.Commit.Author.Email,
		commitTitle,
	)
}
