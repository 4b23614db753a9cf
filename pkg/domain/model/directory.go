package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// MentionRule selects the notification in which a mapped user is mentioned
type MentionRule int

const (
	MentionOnApproved MentionRule = iota
	MentionOnMerged
	MentionOnUnapproved
	MentionOnPipelineFailed
)

// Mention enables Slack mentions per notification
type Mention struct {
	OnApproved       bool `toml:"on_approved"`
	OnMerged         bool `toml:"on_merged"`
	OnUnapproved     bool `toml:"on_unapproved"`
	OnPipelineFailed bool `toml:"on_pipeline_failed"`
}

func (x Mention) Enabled(rule MentionRule) bool {
	switch rule {
	case MentionOnApproved:
		return x.OnApproved
	case MentionOnMerged:
		return x.OnMerged
	case MentionOnUnapproved:
		return x.OnUnapproved
	case MentionOnPipelineFailed:
		return x.OnPipelineFailed
	default:
		return false
	}
}

type GitLabAccount struct {
	ID   int64  `toml:"id"`
	Name string `toml:"name"`
}

type SlackAccount struct {
	ID   string `toml:"id"`
	Name string `toml:"name,omitempty"`
}

// DirectoryUser maps a GitLab account to a Slack account. Slack is nil when the
// user is known but has no Slack account.
type DirectoryUser struct {
	GitLab GitLabAccount `toml:"gitlab"`
	Slack  *SlackAccount `toml:"slack,omitempty"`
}

// UserDirectoryConfig is the file representation of a UserDirectory
type UserDirectoryConfig struct {
	Mention Mention         `toml:"mention"`
	Users   []DirectoryUser `toml:"users"`
}

// UserDirectory resolves GitLab user IDs to names shown in notifications. The
// zero value and nil are empty directories.
type UserDirectory struct {
	mention Mention
	users   map[int64]DirectoryUser
}

// NewUserDirectory validates cfg and builds an immutable directory
func NewUserDirectory(cfg UserDirectoryConfig) (*UserDirectory, error) {
	dir := &UserDirectory{
		mention: cfg.Mention,
		users:   make(map[int64]DirectoryUser, len(cfg.Users)),
	}

	for i, user := range cfg.Users {
		if user.GitLab.Name == "" {
			return nil, goerr.New("gitlab.name is required",
				goerr.V("index", i), goerr.V("gitlab_id", user.GitLab.ID))
		}
		if user.Slack != nil && user.Slack.ID == "" {
			return nil, goerr.New("slack.id is required",
				goerr.V("index", i), goerr.V("gitlab_id", user.GitLab.ID))
		}
		if _, ok := dir.users[user.GitLab.ID]; ok {
			return nil, goerr.New("duplicated gitlab user id", goerr.V("gitlab_id", user.GitLab.ID))
		}
		dir.users[user.GitLab.ID] = user
	}

	return dir, nil
}

func (x *UserDirectory) Len() int {
	if x == nil {
		return 0
	}
	return len(x.users)
}

func (x *UserDirectory) lookup(id int64) (DirectoryUser, bool) {
	if x == nil {
		return DirectoryUser{}, false
	}
	user, ok := x.users[id]
	return user, ok
}

// DisplayName returns the name of a GitLab user for a notification.
// fallback is used for unknown users; a known user without a Slack account is
// shown by the GitLab name; otherwise the Slack user is mentioned when rule is
// enabled, or shown by the Slack name.
func (x *UserDirectory) DisplayName(id int64, fallback string, rule MentionRule) string {
	user, ok := x.lookup(id)
	if !ok {
		return fallback
	}
	if user.Slack == nil {
		return user.GitLab.Name
	}
	if x.mention.Enabled(rule) {
		return fmt.Sprintf("<@%s>", user.Slack.ID)
	}
	if user.Slack.Name != "" {
		return user.Slack.Name
	}
	return user.GitLab.Name
}

// Name is DisplayName without mentions
func (x *UserDirectory) Name(id int64, fallback string) string {
	user, ok := x.lookup(id)
	if !ok {
		return fallback
	}
	if user.Slack != nil && user.Slack.Name != "" {
		return user.Slack.Name
	}
	return user.GitLab.Name
}
