package gitlab

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var rawMessageType = reflect.TypeOf(json.RawMessage{})

type violation struct {
	path   string
	reason string
}

// findViolation walks the Go type of an event alongside the payload and reports
// the first required field that is missing or null, or the first field whose
// JSON shape (object or array) does not match. A field is optional when its
// type is a pointer or its json tag has omitempty. Scalar types are left to
// encoding/json.
func findViolation(obj gjson.Result, t reflect.Type, prefix string) *violation {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, optional, ok := jsonField(field)
		if !ok {
			continue
		}

		path := joinPath(prefix, name)
		value := obj.Get(name)
		if !value.Exists() || value.Type == gjson.Null {
			if optional {
				continue
			}
			return &violation{path: path, reason: "is required"}
		}

		if v := checkShape(value, field.Type, path); v != nil {
			return v
		}
	}

	return nil
}

func checkShape(value gjson.Result, t reflect.Type, path string) *violation {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t == rawMessageType:
		return nil

	case t.Kind() == reflect.Struct:
		if !value.IsObject() {
			return &violation{path: path, reason: "must be an object"}
		}
		return findViolation(value, t, path)

	case t.Kind() == reflect.Slice:
		if !value.IsArray() {
			return &violation{path: path, reason: "must be an array"}
		}
		for idx, item := range value.Array() {
			itemPath := joinPath(path, strconv.Itoa(idx))
			if item.Type == gjson.Null {
				return &violation{path: itemPath, reason: "must not be null"}
			}
			if v := checkShape(item, t.Elem(), itemPath); v != nil {
				return v
			}
		}
	}

	return nil
}

func jsonField(field reflect.StructField) (name string, optional bool, ok bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, false
	}

	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}

	optional = field.Type.Kind() == reflect.Pointer || field.Tag.Get("validate") == "optional"
	return name, optional, true
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
