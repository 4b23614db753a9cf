package gitlab

// User identifies an actor of a GitLab event
type User struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
	Email     *string `json:"email"`
}

// Author is the git author of a commit
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Project identifies the repository context of an event
type Project struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	WebURL            string  `json:"web_url"`
	AvatarURL         *string `json:"avatar_url"`
	GitSSHURL         *string `json:"git_ssh_url"`
	GitHTTPURL        *string `json:"git_http_url"`
	Namespace         string  `json:"namespace"`
	VisibilityLevel   *int64  `json:"visibility_level"`
	PathWithNamespace string  `json:"path_with_namespace"`
	DefaultBranch     *string `json:"default_branch"`
	CIConfigPath      *string `json:"ci_config_path"`
	Homepage          *string `json:"homepage"`
	URL               *string `json:"url"`
	SSHURL            *string `json:"ssh_url"`
	HTTPURL           *string `json:"http_url"`
}

type Repository struct {
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	Description     *string `json:"description"`
	Homepage        *string `json:"homepage"`
	GitHTTPURL      *string `json:"git_http_url"`
	GitSSHURL       *string `json:"git_ssh_url"`
	VisibilityLevel *int64  `json:"visibility_level"`
}

// Label is attached to issues and merge requests. Group labels have no project_id.
type Label struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Color       string  `json:"color"`
	ProjectID   *int64  `json:"project_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Template    bool    `json:"template"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
	GroupID     *int64  `json:"group_id"`
}

type Commit struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Title     *string  `json:"title"`
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Author    Author   `json:"author"`
	Added     []string `json:"added" validate:"optional"`
	Modified  []string `json:"modified" validate:"optional"`
	Removed   []string `json:"removed" validate:"optional"`
}

// LastCommit is the head commit of a merge request
type LastCommit struct {
	ID        string  `json:"id"`
	Message   string  `json:"message"`
	Title     *string `json:"title"`
	Timestamp string  `json:"timestamp"`
	URL       string  `json:"url"`
	Author    Author  `json:"author"`
}

type ArtifactsFile struct {
	Filename *string `json:"filename"`
	Size     *int64  `json:"size"`
}

type Runner struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	RunnerType  *string  `json:"runner_type"`
	Active      bool     `json:"active"`
	IsShared    bool     `json:"is_shared"`
	Tags        []string `json:"tags" validate:"optional"`
}

type BuildEnvironment struct {
	Name           string  `json:"name"`
	Action         string  `json:"action"`
	DeploymentTier *string `json:"deployment_tier"`
}

// Build is a single job of a pipeline
type Build struct {
	ID             int64             `json:"id"`
	Stage          string            `json:"stage"`
	Name           string            `json:"name"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"created_at"`
	StartedAt      *string           `json:"started_at"`
	FinishedAt     *string           `json:"finished_at"`
	Duration       *float64          `json:"duration"`
	QueuedDuration *float64          `json:"queued_duration"`
	FailureReason  *string           `json:"failure_reason"`
	When           string            `json:"when"`
	Manual         bool              `json:"manual"`
	AllowFailure   *bool             `json:"allow_failure"`
	User           User              `json:"user"`
	Runner         *Runner           `json:"runner"`
	ArtifactsFile  *ArtifactsFile    `json:"artifacts_file"`
	Environment    *BuildEnvironment `json:"environment"`
}

// Snippet is the target of a note left on a snippet
type Snippet struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	AuthorID        int64   `json:"author_id"`
	ProjectID       int64   `json:"project_id"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	FileName        string  `json:"file_name"`
	ExpiresAt       *string `json:"expires_at"`
	Type            string  `json:"type"`
	VisibilityLevel int64   `json:"visibility_level"`
}

type Wiki struct {
	WebURL            string `json:"web_url"`
	GitSSHURL         string `json:"git_ssh_url"`
	GitHTTPURL        string `json:"git_http_url"`
	PathWithNamespace string `json:"path_with_namespace"`
	DefaultBranch     string `json:"default_branch"`
}
