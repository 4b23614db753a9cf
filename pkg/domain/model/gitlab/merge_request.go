package gitlab

import "encoding/json"

// MergeRequestAction is the value of object_attributes.action of a merge request event
type MergeRequestAction string

const (
	MergeRequestActionOpen      MergeRequestAction = "open"
	MergeRequestActionClose     MergeRequestAction = "close"
	MergeRequestActionReopen    MergeRequestAction = "reopen"
	MergeRequestActionUpdate    MergeRequestAction = "update"
	MergeRequestActionApprove   MergeRequestAction = "approve"
	MergeRequestActionApproved  MergeRequestAction = "approved"
	MergeRequestActionUnapprove MergeRequestAction = "unapprove"
	MergeRequestActionMerge     MergeRequestAction = "merge"
)

// MergeRequest is the merge request snapshot attached to a note event
type MergeRequest struct {
	ID              int64       `json:"id"`
	IID             int64       `json:"iid"`
	TargetBranch    string      `json:"target_branch"`
	SourceBranch    string      `json:"source_branch"`
	SourceProjectID int64       `json:"source_project_id"`
	TargetProjectID int64       `json:"target_project_id"`
	AuthorID        int64       `json:"author_id"`
	AssigneeID      *int64      `json:"assignee_id"`
	Title           string      `json:"title"`
	State           string      `json:"state"`
	MergeStatus     string      `json:"merge_status"`
	Description     *string     `json:"description"`
	Labels          []Label     `json:"labels" validate:"optional"`
	URL             string      `json:"url"`
	Source          Project     `json:"source"`
	Target          Project     `json:"target"`
	LastCommit      *LastCommit `json:"last_commit"`
	WorkInProgress  bool        `json:"work_in_progress"`
	CreatedAt       *string     `json:"created_at"`
	UpdatedAt       *string     `json:"updated_at"`
}

// MergeRequestAttributes is the merge request state carried by a merge request event
type MergeRequestAttributes struct {
	ID                          int64               `json:"id"`
	IID                         int64               `json:"iid"`
	TargetBranch                string              `json:"target_branch"`
	SourceBranch                string              `json:"source_branch"`
	SourceProjectID             int64               `json:"source_project_id"`
	TargetProjectID             int64               `json:"target_project_id"`
	AuthorID                    int64               `json:"author_id"`
	AssigneeID                  *int64              `json:"assignee_id"`
	AssigneeIDs                 []int64             `json:"assignee_ids" validate:"optional"`
	ReviewerIDs                 []int64             `json:"reviewer_ids" validate:"optional"`
	Title                       string              `json:"title"`
	Description                 *string             `json:"description"`
	State                       string              `json:"state"`
	BlockingDiscussionsResolved *bool               `json:"blocking_discussions_resolved"`
	WorkInProgress              bool                `json:"work_in_progress"`
	Draft                       *bool               `json:"draft"`
	MergeStatus                 string              `json:"merge_status"`
	DetailedMergeStatus         *string             `json:"detailed_merge_status"`
	MergeCommitSHA              *string             `json:"merge_commit_sha"`
	MilestoneID                 *int64              `json:"milestone_id"`
	HeadPipelineID              *int64              `json:"head_pipeline_id"`
	CreatedAt                   string              `json:"created_at"`
	UpdatedAt                   string              `json:"updated_at"`
	URL                         string              `json:"url"`
	Source                      Project             `json:"source"`
	Target                      Project             `json:"target"`
	LastCommit                  *LastCommit         `json:"last_commit"`
	Labels                      []Label             `json:"labels"`
	Action                      *MergeRequestAction `json:"action"`
}

type MergeRequestEvent struct {
	ObjectKind       *string                `json:"object_kind"`
	EventType        *string                `json:"event_type"`
	User             User                   `json:"user"`
	Project          Project                `json:"project"`
	Repository       Repository             `json:"repository"`
	ObjectAttributes MergeRequestAttributes `json:"object_attributes"`
	Labels           []Label                `json:"labels"`
	Assignees        []User                 `json:"assignees" validate:"optional"`
	Reviewers        []User                 `json:"reviewers" validate:"optional"`
	Changes          json.RawMessage        `json:"changes" validate:"optional"`
}

func (x *MergeRequestEvent) Kind() ObjectKind { return KindMergeRequest }
func (x *MergeRequestEvent) sealed()          {}
