package properties

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes reported by the validator.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeInvalidEnum  = "invalid_enum"
	CodeTooSmall     = "too_small"
	CodeNotEmpty     = "not_empty"
	CodeDuplicateKey = "duplicate_key"
)

// Issue is a single violation found in a property record. Path is a JSON
// pointer into the validated value.
type Issue struct {
	Path    string
	Code    string
	Message string
}

// ValidationError lists every issue found in the first invalid record.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("invalid property record: ")
	for i, it := range e.Issues {
		if i == maxShown {
			fmt.Fprintf(b, "; ... (total %d)", len(e.Issues))
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	return b.String()
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// textFields are the string attributes every record carries, in wire order.
var textFields = [...]string{"name", "label", "description", "groupName", "fieldType"}

// DecodeAll validates a list of raw records and returns the properties in
// the same order. It stops at the first invalid record.
func DecodeAll(raw any) ([]Property, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Issues: []Issue{{
			Path:    "",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected an array of property records, got %s", kindOf(raw)),
		}}}
	}

	props := make([]Property, 0, len(list))
	for i, item := range list {
		p, issues := decode(item, "/"+strconv.Itoa(i))
		if len(issues) > 0 {
			return nil, &ValidationError{Issues: issues}
		}
		props = append(props, p)
	}
	return props, nil
}

// Decode validates a single raw record, as produced by decoding the JSON
// returned by the portal, and builds the matching variant. Empty strings are
// kept as empty strings.
func Decode(raw any) (Property, error) {
	p, issues := decode(raw, "")
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return p, nil
}

func decode(raw any, path string) (Property, []Issue) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return nil, []Issue{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected an object, got %s", kindOf(raw)),
		}}
	}

	var issues []Issue
	v, typeOK := checkType(rec, path, &issues)

	text := make(map[string]string, len(textFields))
	for _, f := range textFields {
		s, ok := requireString(rec, f, path, &issues)
		if !ok {
			continue
		}
		if s == "" && (f == "name" || f == "groupName") {
			issues = append(issues, Issue{Path: path + "/" + f, Code: CodeTooSmall, Message: "must not be empty"})
			continue
		}
		text[f] = s
	}

	var opts []Option
	if typeOK {
		if v.withOptions {
			opts = checkOptions(rec, path, &issues)
		} else {
			checkNoOptions(rec, path, &issues)
		}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	b := Base{
		Name:        text["name"],
		Label:       Ptr(text["label"]),
		Description: Ptr(text["description"]),
		GroupName:   text["groupName"],
		FieldWidget: Ptr(text["fieldType"]),
	}
	return v.build(b, opts), nil
}

func checkType(rec map[string]any, path string, issues *[]Issue) (variant, bool) {
	token, ok := requireString(rec, "type", path, issues)
	if !ok {
		return variant{}, false
	}
	v, ok := lookup(Type(token))
	if !ok {
		*issues = append(*issues, Issue{
			Path:    path + "/type",
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("unsupported property type %q, expected one of: %s", token, supportedTypesList()),
		})
		return variant{}, false
	}
	return v, true
}

func requireString(obj map[string]any, key, path string, issues *[]Issue) (string, bool) {
	raw, present := obj[key]
	if !present {
		*issues = append(*issues, Issue{Path: path + "/" + key, Code: CodeRequired, Message: "is required"})
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		*issues = append(*issues, Issue{
			Path:    path + "/" + key,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected a string, got %s", kindOf(raw)),
		})
		return "", false
	}
	return s, true
}

func requireArray(rec map[string]any, path string, issues *[]Issue) ([]any, bool) {
	raw, present := rec["options"]
	if !present {
		*issues = append(*issues, Issue{Path: path + "/options", Code: CodeRequired, Message: "is required"})
		return nil, false
	}
	list, ok := raw.([]any)
	if !ok {
		*issues = append(*issues, Issue{
			Path:    path + "/options",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected an array, got %s", kindOf(raw)),
		})
		return nil, false
	}
	return list, true
}

func checkNoOptions(rec map[string]any, path string, issues *[]Issue) {
	list, ok := requireArray(rec, path, issues)
	if ok && len(list) > 0 {
		*issues = append(*issues, Issue{
			Path:    path + "/options",
			Code:    CodeNotEmpty,
			Message: fmt.Sprintf("must be empty for this property type, got %d options", len(list)),
		})
	}
}

func checkOptions(rec map[string]any, path string, issues *[]Issue) []Option {
	list, ok := requireArray(rec, path, issues)
	if !ok {
		return nil
	}
	if len(list) == 0 {
		*issues = append(*issues, Issue{Path: path + "/options", Code: CodeTooSmall, Message: "must contain at least one option"})
		return nil
	}

	opts := make([]Option, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for i, item := range list {
		itemPath := path + "/options/" + strconv.Itoa(i)
		obj, ok := item.(map[string]any)
		if !ok {
			*issues = append(*issues, Issue{
				Path:    itemPath,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected an object, got %s", kindOf(item)),
			})
			continue
		}
		label, labelOK := requireString(obj, "label", itemPath, issues)
		value, valueOK := requireString(obj, "value", itemPath, issues)
		if !labelOK || !valueOK {
			continue
		}
		if _, dup := seen[label]; dup {
			*issues = append(*issues, Issue{
				Path:    itemPath + "/label",
				Code:    CodeDuplicateKey,
				Message: fmt.Sprintf("option label %q is repeated", label),
			})
			continue
		}
		seen[label] = struct{}{}
		opts = append(opts, Option{Label: label, Value: value})
	}
	return opts
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
