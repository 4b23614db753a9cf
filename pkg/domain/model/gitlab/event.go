// Package gitlab defines GitLab webhook payloads as a closed set of event types
// and decodes raw payloads into them.
package gitlab

import "github.com/m-mizutani/goerr/v2"

// ObjectKind is the value of the object_kind discriminator of a webhook payload
type ObjectKind string

const (
	KindIssue        ObjectKind = "issue"
	KindMergeRequest ObjectKind = "merge_request"
	KindNote         ObjectKind = "note"
	KindPipeline     ObjectKind = "pipeline"
	KindPush         ObjectKind = "push"
	KindTagPush      ObjectKind = "tag_push"
	KindWikiPage     ObjectKind = "wiki_page"
)

// Event is one of *IssueEvent, *MergeRequestEvent, *NoteEvent, *PipelineEvent,
// *PushEvent, *TagPushEvent or *WikiPageEvent. The set is closed: types outside
// this package cannot implement it.
type Event interface {
	Kind() ObjectKind
	sealed()
}

var (
	ErrUnrecognizedEventKind = goerr.New("unrecognized event kind")
	ErrMalformedPayload      = goerr.New("malformed payload")
)

var eventFactories = map[ObjectKind]func() Event{
	KindIssue:        func() Event { return &IssueEvent{} },
	KindMergeRequest: func() Event { return &MergeRequestEvent{} },
	KindNote:         func() Event { return &NoteEvent{} },
	KindPipeline:     func() Event { return &PipelineEvent{} },
	KindPush:         func() Event { return &PushEvent{} },
	KindTagPush:      func() Event { return &TagPushEvent{} },
	KindWikiPage:     func() Event { return &WikiPageEvent{} },
}

// Kinds returns every supported object kind
func Kinds() []ObjectKind {
	return []ObjectKind{
		KindIssue,
		KindMergeRequest,
		KindNote,
		KindPipeline,
		KindPush,
		KindTagPush,
		KindWikiPage,
	}
}
