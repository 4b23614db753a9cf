package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// event_type values that differ from the object_kind of the same payload
var eventTypeAliases = map[string]ObjectKind{
	"confidential_issue": KindIssue,
	"confidential_note":  KindNote,
}

// Parse decodes a raw webhook payload into one of the Event types. The variant
// is selected by object_kind, or by event_type when object_kind is absent.
// Unknown kinds fail with ErrUnrecognizedEventKind; payloads that do not match
// the selected variant fail with ErrMalformedPayload.
func Parse(data []byte) (Event, error) {
	if !gjson.ValidBytes(data) {
		return nil, goerr.Wrap(ErrMalformedPayload, "payload is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, goerr.Wrap(ErrMalformedPayload, "payload must be a JSON object")
	}

	kind, err := discriminator(root)
	if err != nil {
		return nil, err
	}

	newEvent, ok := eventFactories[kind]
	if !ok {
		return nil, goerr.Wrap(ErrUnrecognizedEventKind,
			fmt.Sprintf("object_kind %q is not supported", kind),
			goerr.V("object_kind", kind))
	}

	event := newEvent()
	if v := findViolation(root, reflect.TypeOf(event).Elem(), ""); v != nil {
		return nil, malformed(kind, v.path, v.reason)
	}

	if err := json.Unmarshal(data, event); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, malformed(kind, typeErr.Field, "must be "+typeErr.Type.String())
		}
		return nil, goerr.Wrap(ErrMalformedPayload, err.Error(), goerr.V("object_kind", kind))
	}

	return event, nil
}

// ParseReader reads the whole payload from r and decodes it with Parse
func ParseReader(r io.Reader) (Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload")
	}
	return Parse(data)
}

// ParseValue decodes an already unmarshaled JSON value such as map[string]any
func ParseValue(v any) (Event, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, goerr.Wrap(ErrMalformedPayload, err.Error())
	}
	return Parse(data)
}

func discriminator(root gjson.Result) (ObjectKind, error) {
	if v := root.Get("object_kind"); v.Exists() && v.Type != gjson.Null {
		if v.Type != gjson.String {
			return "", malformed("", "object_kind", "must be a string")
		}
		return ObjectKind(v.Str), nil
	}

	if v := root.Get("event_type"); v.Exists() && v.Type != gjson.Null {
		if v.Type != gjson.String {
			return "", malformed("", "event_type", "must be a string")
		}
		if kind, ok := eventTypeAliases[v.Str]; ok {
			return kind, nil
		}
		return ObjectKind(v.Str), nil
	}

	return "", malformed("", "object_kind", "is required")
}

func malformed(kind ObjectKind, path, reason string) error {
	return goerr.Wrap(ErrMalformedPayload,
		fmt.Sprintf("field %q %s", path, reason),
		goerr.V("object_kind", kind),
		goerr.V("path", path),
	)
}
