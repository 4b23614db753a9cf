package gitlab

type WikiPageAttributes struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Format    string  `json:"format"`
	Message   string  `json:"message"`
	Slug      string  `json:"slug"`
	URL       string  `json:"url"`
	Action    string  `json:"action"`
	VersionID *string `json:"version_id"`
	DiffURL   *string `json:"diff_url"`
}

type WikiPageEvent struct {
	ObjectKind       *string            `json:"object_kind"`
	User             User               `json:"user"`
	Project          Project            `json:"project"`
	Wiki             Wiki               `json:"wiki"`
	ObjectAttributes WikiPageAttributes `json:"object_attributes"`
}

func (x *WikiPageEvent) Kind() ObjectKind { return KindWikiPage }
func (x *WikiPageEvent) sealed()          {}
