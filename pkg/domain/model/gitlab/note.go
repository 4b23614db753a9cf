package gitlab

// StDiff is the diff hunk a note on a commit refers to
type StDiff struct {
	Diff        string `json:"diff"`
	NewPath     string `json:"new_path"`
	OldPath     string `json:"old_path"`
	AMode       string `json:"a_mode"`
	BMode       string `json:"b_mode"`
	NewFile     bool   `json:"new_file"`
	RenamedFile bool   `json:"renamed_file"`
	DeletedFile bool   `json:"deleted_file"`
}

type NoteAttributes struct {
	ID           int64   `json:"id"`
	Note         string  `json:"note"`
	NoteableType string  `json:"noteable_type"`
	AuthorID     int64   `json:"author_id"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
	ProjectID    int64   `json:"project_id"`
	Attachment   *string `json:"attachment"`
	LineCode     *string `json:"line_code"`
	CommitID     *string `json:"commit_id"`
	NoteableID   *int64  `json:"noteable_id"`
	System       *bool   `json:"system"`
	StDiff       *StDiff `json:"st_diff"`
	Description  *string `json:"description"`
	URL          string  `json:"url"`
}

// NoteTarget names the object a note was left on
type NoteTarget string

const (
	NoteTargetCommit       NoteTarget = "commit"
	NoteTargetMergeRequest NoteTarget = "merge_request"
	NoteTargetIssue        NoteTarget = "issue"
	NoteTargetSnippet      NoteTarget = "snippet"
	NoteTargetNone         NoteTarget = ""
)

// NoteEvent carries exactly one of Commit, MergeRequest, Issue or Snippet.
// GitLab guarantees the exclusivity; it is not validated here.
type NoteEvent struct {
	ObjectKind       *string        `json:"object_kind"`
	EventType        *string        `json:"event_type"`
	User             User           `json:"user"`
	ProjectID        int64          `json:"project_id"`
	Project          Project        `json:"project"`
	Repository       Repository     `json:"repository"`
	ObjectAttributes NoteAttributes `json:"object_attributes"`
	Commit           *Commit        `json:"commit"`
	MergeRequest     *MergeRequest  `json:"merge_request"`
	Issue            *Issue         `json:"issue"`
	Snippet          *Snippet       `json:"snippet"`
}

func (x *NoteEvent) Kind() ObjectKind { return KindNote }
func (x *NoteEvent) sealed()          {}

// Target returns which object the note was left on
func (x *NoteEvent) Target() NoteTarget {
	switch {
	case x.Commit != nil:
		return NoteTargetCommit
	case x.MergeRequest != nil:
		return NoteTargetMergeRequest
	case x.Issue != nil:
		return NoteTargetIssue
	case x.Snippet != nil:
		return NoteTargetSnippet
	default:
		return NoteTargetNone
	}
}
