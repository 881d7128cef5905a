package properties_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/hubspot-contacts/properties"
)

func validRecord(typ string) map[string]any {
	return map[string]any{
		"name":        "name",
		"label":       "label",
		"description": "description",
		"groupName":   "group_name",
		"fieldType":   "field_widget",
		"type":        typ,
		"options":     []any{},
	}
}

func issueCodes(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := properties.AsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	codes := make(map[string]string, len(ve.Issues))
	for _, it := range ve.Issues {
		codes[it.Path] = it.Code
	}
	return codes
}

func TestDecodeUnsupportedType(t *testing.T) {
	_, err := properties.Decode(validRecord("invalid_type"))

	codes := issueCodes(t, err)
	if codes["/type"] != properties.CodeInvalidEnum {
		t.Errorf("issues = %v, want invalid_enum at /type", codes)
	}
	msg := err.Error()
	for _, want := range []string{"invalid_type", "string", "number", "datetime", "bool", "enumeration"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestDecodeKeepsEmptyStrings(t *testing.T) {
	rec := validRecord("string")
	rec["label"] = ""
	rec["description"] = ""
	rec["fieldType"] = ""

	p, err := properties.Decode(rec)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want, err := properties.NewString(properties.Base{
		Name:        "name",
		Label:       properties.Ptr(""),
		Description: properties.Ptr(""),
		GroupName:   "group_name",
		FieldWidget: properties.Ptr(""),
	})
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if !properties.Equal(want, p) {
		t.Errorf("Decode = %#v, want %#v", p, want)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	rec := validRecord("number")
	rec["displayOrder"] = float64(3)
	rec["hidden"] = false

	p, err := properties.Decode(rec)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := p.(properties.NumberProperty); !ok {
		t.Errorf("Decode returned %T, want NumberProperty", p)
	}
}

func TestDecodeReportsEveryViolation(t *testing.T) {
	rec := validRecord("string")
	delete(rec, "name")
	rec["label"] = nil
	rec["description"] = float64(4)
	rec["groupName"] = ""
	rec["options"] = []any{map[string]any{"label": "a", "value": "a"}}

	_, err := properties.Decode(rec)

	want := map[string]string{
		"/name":        properties.CodeRequired,
		"/label":       properties.CodeInvalidType,
		"/description": properties.CodeInvalidType,
		"/groupName":   properties.CodeTooSmall,
		"/options":     properties.CodeNotEmpty,
	}
	if diff := cmp.Diff(want, issueCodes(t, err)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEnumerationOptions(t *testing.T) {
	rec := validRecord("enumeration")
	rec["options"] = []any{
		map[string]any{"label": "Red", "value": "red", "displayOrder": float64(0)},
		map[string]any{"label": "Yellow", "value": "yellow"},
		map[string]any{"label": "Green", "value": "green"},
	}

	p, err := properties.Decode(rec)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	enum, ok := p.(properties.EnumerationProperty)
	if !ok {
		t.Fatalf("Decode returned %T, want EnumerationProperty", p)
	}
	if diff := cmp.Diff(trafficLightOptions, enum.Options()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEnumerationOptionErrors(t *testing.T) {
	tests := []struct {
		name    string
		options any
		want    map[string]string
	}{
		{"empty", []any{}, map[string]string{"/options": properties.CodeTooSmall}},
		{"not an array", "red", map[string]string{"/options": properties.CodeInvalidType}},
		{"item not an object", []any{"red"}, map[string]string{"/options/0": properties.CodeInvalidType}},
		{"missing value", []any{map[string]any{"label": "Red"}}, map[string]string{"/options/0/value": properties.CodeRequired}},
		{"numeric label", []any{map[string]any{"label": float64(1), "value": "1"}}, map[string]string{"/options/0/label": properties.CodeInvalidType}},
		{"repeated label", []any{
			map[string]any{"label": "Red", "value": "red"},
			map[string]any{"label": "Red", "value": "crimson"},
		}, map[string]string{"/options/1/label": properties.CodeDuplicateKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord("enumeration")
			rec["options"] = tt.options

			_, err := properties.Decode(rec)
			if diff := cmp.Diff(tt.want, issueCodes(t, err)); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMissingOptions(t *testing.T) {
	rec := validRecord("bool")
	delete(rec, "options")

	_, err := properties.Decode(rec)
	if got := issueCodes(t, err)["/options"]; got != properties.CodeRequired {
		t.Errorf("issue at /options = %q, want %q", got, properties.CodeRequired)
	}
}

func TestDecodeNotAnObject(t *testing.T) {
	_, err := properties.Decode([]any{})
	if got := issueCodes(t, err)[""]; got != properties.CodeInvalidType {
		t.Errorf("issue at root = %q, want %q", got, properties.CodeInvalidType)
	}
}

func TestDecodeAllStopsAtFirstInvalidRecord(t *testing.T) {
	raw := []any{
		validRecord("string"),
		validRecord("invalid_type"),
		validRecord("also_invalid"),
	}

	_, err := properties.DecodeAll(raw)

	want := map[string]string{"/1/type": properties.CodeInvalidEnum}
	if diff := cmp.Diff(want, issueCodes(t, err)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAllRequiresArray(t *testing.T) {
	_, err := properties.DecodeAll(map[string]any{"results": []any{}})
	if got := issueCodes(t, err)[""]; got != properties.CodeInvalidType {
		t.Errorf("issue at root = %q, want %q", got, properties.CodeInvalidType)
	}
}

func TestValidationErrorSummary(t *testing.T) {
	err := &properties.ValidationError{Issues: []properties.Issue{
		{Path: "/a", Code: "required", Message: "is required"},
		{Path: "/b", Code: "required", Message: "is required"},
		{Path: "/c", Code: "required", Message: "is required"},
		{Path: "/d", Code: "required", Message: "is required"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "required at /c") {
		t.Errorf("message %q does not list the third issue", msg)
	}
	if strings.Contains(msg, "/d") {
		t.Errorf("message %q lists more than three issues", msg)
	}
	if !strings.Contains(msg, "total 4") {
		t.Errorf("message %q does not report the total", msg)
	}
}
