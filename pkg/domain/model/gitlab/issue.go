package gitlab

import "encoding/json"

// Issue is the issue snapshot attached to a note event
type Issue struct {
	ID          int64   `json:"id"`
	IID         int64   `json:"iid"`
	Title       string  `json:"title"`
	AssigneeIDs []int64 `json:"assignee_ids"`
	AssigneeID  *int64  `json:"assignee_id"`
	AuthorID    int64   `json:"author_id"`
	ProjectID   int64   `json:"project_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	BranchName  *string `json:"branch_name"`
	Description *string `json:"description"`
	MilestoneID *int64  `json:"milestone_id"`
	State       string  `json:"state"`
	Labels      []Label `json:"labels" validate:"optional"`
}

// IssueAttributes is the full issue state carried by an issue event
type IssueAttributes struct {
	ID                  int64   `json:"id"`
	IID                 int64   `json:"iid"`
	Title               string  `json:"title"`
	AssigneeIDs         []int64 `json:"assignee_ids"`
	AssigneeID          *int64  `json:"assignee_id"`
	AuthorID            int64   `json:"author_id"`
	ProjectID           int64   `json:"project_id"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
	UpdatedByID         *int64  `json:"updated_by_id"`
	LastEditedAt        *string `json:"last_edited_at"`
	LastEditedByID      *int64  `json:"last_edited_by_id"`
	RelativePosition    *int64  `json:"relative_position"`
	Description         *string `json:"description"`
	MilestoneID         *int64  `json:"milestone_id"`
	StateID             int64   `json:"state_id"`
	Confidential        bool    `json:"confidential"`
	DiscussionLocked    *bool   `json:"discussion_locked"`
	DueDate             *string `json:"due_date"`
	MovedToID           *int64  `json:"moved_to_id"`
	DuplicatedToID      *int64  `json:"duplicated_to_id"`
	TimeEstimate        int64   `json:"time_estimate"`
	TotalTimeSpent      int64   `json:"total_time_spent"`
	TimeChange          *int64  `json:"time_change"`
	HumanTotalTimeSpent *string `json:"human_total_time_spent"`
	HumanTimeEstimate   *string `json:"human_time_estimate"`
	HumanTimeChange     *string `json:"human_time_change"`
	Weight              *int64  `json:"weight"`
	URL                 string  `json:"url"`
	State               string  `json:"state"`
	Action              *string `json:"action"`
	Severity            *string `json:"severity"`
	EscalationStatus    *string `json:"escalation_status"`
	Labels              []Label `json:"labels"`
}

type IssueEvent struct {
	ObjectKind       *string         `json:"object_kind"`
	EventType        *string         `json:"event_type"`
	User             User            `json:"user"`
	Project          Project         `json:"project"`
	ObjectAttributes IssueAttributes `json:"object_attributes"`
	Repository       Repository      `json:"repository"`
	Assignees        []User          `json:"assignees" validate:"optional"`
	Labels           []Label         `json:"labels"`
	Changes          json.RawMessage `json:"changes" validate:"optional"`
}

func (x *IssueEvent) Kind() ObjectKind { return KindIssue }
func (x *IssueEvent) sealed()          {}
