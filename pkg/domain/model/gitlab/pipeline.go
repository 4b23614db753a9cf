package gitlab

const PipelineStatusFailed = "failed"

type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type PipelineAttributes struct {
	ID             int64      `json:"id"`
	IID            *int64     `json:"iid"`
	Ref            string     `json:"ref"`
	Tag            bool       `json:"tag"`
	SHA            string     `json:"sha"`
	BeforeSHA      string     `json:"before_sha"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	DetailedStatus *string    `json:"detailed_status"`
	Stages         []string   `json:"stages"`
	CreatedAt      string     `json:"created_at"`
	FinishedAt     *string    `json:"finished_at"`
	Duration       *int64     `json:"duration"`
	QueuedDuration *int64     `json:"queued_duration"`
	URL            *string    `json:"url"`
	Variables      []Variable `json:"variables" validate:"optional"`
}

// PipelineMergeRequest is present when the pipeline ran for a merge request
type PipelineMergeRequest struct {
	ID                  int64   `json:"id"`
	IID                 int64   `json:"iid"`
	Title               string  `json:"title"`
	SourceBranch        string  `json:"source_branch"`
	SourceProjectID     int64   `json:"source_project_id"`
	TargetBranch        string  `json:"target_branch"`
	TargetProjectID     int64   `json:"target_project_id"`
	State               string  `json:"state"`
	MergeStatus         string  `json:"merge_status"`
	DetailedMergeStatus *string `json:"detailed_merge_status"`
	URL                 string  `json:"url"`
}

type PipelineEvent struct {
	ObjectKind       *string               `json:"object_kind"`
	ObjectAttributes PipelineAttributes    `json:"object_attributes"`
	MergeRequest     *PipelineMergeRequest `json:"merge_request"`
	User             User                  `json:"user"`
	Project          Project               `json:"project"`
	Commit           Commit                `json:"commit"`
	Builds           []Build               `json:"builds"`
}

func (x *PipelineEvent) Kind() ObjectKind { return KindPipeline }
func (x *PipelineEvent) sealed()          {}
