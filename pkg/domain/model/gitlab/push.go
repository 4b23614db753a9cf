package gitlab

type PushEvent struct {
	ObjectKind        *string    `json:"object_kind"`
	EventName         string     `json:"event_name"`
	Before            string     `json:"before"`
	After             string     `json:"after"`
	Ref               string     `json:"ref"`
	RefProtected      *bool      `json:"ref_protected"`
	CheckoutSHA       *string    `json:"checkout_sha"`
	Message           *string    `json:"message"`
	UserID            int64      `json:"user_id"`
	UserName          string     `json:"user_name"`
	UserUsername      string     `json:"user_username"`
	UserEmail         *string    `json:"user_email"`
	UserAvatar        *string    `json:"user_avatar"`
	ProjectID         int64      `json:"project_id"`
	Project           Project    `json:"project"`
	Repository        Repository `json:"repository"`
	Commits           []Commit   `json:"commits"`
	TotalCommitsCount int64      `json:"total_commits_count"`
}

func (x *PushEvent) Kind() ObjectKind { return KindPush }
func (x *PushEvent) sealed()          {}

// TagPushEvent differs from PushEvent in that user_username is not always sent
type TagPushEvent struct {
	ObjectKind        *string    `json:"object_kind"`
	EventName         string     `json:"event_name"`
	Before            string     `json:"before"`
	After             string     `json:"after"`
	Ref               string     `json:"ref"`
	RefProtected      *bool      `json:"ref_protected"`
	CheckoutSHA       *string    `json:"checkout_sha"`
	Message           *string    `json:"message"`
	UserID            int64      `json:"user_id"`
	UserName          string     `json:"user_name"`
	UserUsername      *string    `json:"user_username"`
	UserEmail         *string    `json:"user_email"`
	UserAvatar        *string    `json:"user_avatar"`
	ProjectID         int64      `json:"project_id"`
	Project           Project    `json:"project"`
	Repository        Repository `json:"repository"`
	Commits           []Commit   `json:"commits"`
	TotalCommitsCount int64      `json:"total_commits_count"`
}

func (x *TagPushEvent) Kind() ObjectKind { return KindTagPush }
func (x *TagPushEvent) sealed()          {}
