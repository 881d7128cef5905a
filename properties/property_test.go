package properties_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/johnwards/hubspot-contacts/properties"
)

var stubBase = properties.Base{
	Name:        "is_polite",
	Label:       properties.Ptr("Is contact polite?"),
	Description: properties.Ptr("Whether the contact is polite"),
	GroupName:   "social_interaction",
	FieldWidget: properties.Ptr("booleancheckbox"),
}

var trafficLightOptions = []properties.Option{
	{Label: "Red", Value: "red"},
	{Label: "Yellow", Value: "yellow"},
	{Label: "Green", Value: "green"},
}

func mustFromBase(t *testing.T, typ properties.Type, b properties.Base, extra properties.Extra) properties.Property {
	t.Helper()
	p, err := properties.FromBase(typ, b, extra)
	if err != nil {
		t.Fatalf("FromBase(%s): %v", typ, err)
	}
	return p
}

func TestFromBaseCopiesBaseAttributes(t *testing.T) {
	for _, typ := range properties.SupportedTypes() {
		t.Run(string(typ), func(t *testing.T) {
			var extra properties.Extra
			if typ == properties.TypeEnumeration {
				extra.Options = trafficLightOptions
			}
			p := mustFromBase(t, typ, stubBase, extra)

			if got := properties.TypeOf(p); got != typ {
				t.Errorf("TypeOf = %q, want %q", got, typ)
			}
			if diff := cmp.Diff(stubBase, p.Base()); diff != "" {
				t.Errorf("Base mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromBaseDoesNotAliasInputs(t *testing.T) {
	label := "Traffic Light"
	opts := []properties.Option{{Label: "Red", Value: "red"}}
	b := properties.Base{Name: "trafficlight", Label: &label, GroupName: "traffic"}

	p, err := properties.NewEnumeration(b, opts)
	if err != nil {
		t.Fatalf("NewEnumeration: %v", err)
	}

	label = "changed"
	opts[0].Value = "changed"

	if got := *p.Base().Label; got != "Traffic Light" {
		t.Errorf("Label = %q, want %q", got, "Traffic Light")
	}
	if got := p.Options()[0].Value; got != "red" {
		t.Errorf("option value = %q, want %q", got, "red")
	}

	returned := p.Options()
	returned[0].Label = "mutated"
	if got := p.Options()[0].Label; got != "Red" {
		t.Errorf("option label = %q after mutating the returned slice, want %q", got, "Red")
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		typ   properties.Type
		base  properties.Base
		extra properties.Extra
		field string
	}{
		{"enumeration without options", properties.TypeEnumeration, stubBase, properties.Extra{}, "options"},
		{"enumeration with empty options", properties.TypeEnumeration, stubBase, properties.Extra{Options: []properties.Option{}}, "options"},
		{"duplicate option label", properties.TypeEnumeration, stubBase, properties.Extra{Options: []properties.Option{
			{Label: "a", Value: "1"}, {Label: "a", Value: "2"},
		}}, "options"},
		{"options on string", properties.TypeString, stubBase, properties.Extra{Options: trafficLightOptions}, "options"},
		{"missing name", properties.TypeNumber, properties.Base{GroupName: "g"}, properties.Extra{}, "name"},
		{"missing group", properties.TypeNumber, properties.Base{Name: "n"}, properties.Extra{}, "groupName"},
		{"unregistered type", properties.Type("phone_number"), stubBase, properties.Extra{}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := properties.FromBase(tt.typ, tt.base, tt.extra)
			var ce *properties.ConstructionError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConstructionError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestFromBaseAcceptsEmptyOptionsOnPlainTypes(t *testing.T) {
	for _, typ := range []properties.Type{
		properties.TypeString,
		properties.TypeNumber,
		properties.TypeDatetime,
		properties.TypeBoolean,
	} {
		p, err := properties.FromBase(typ, stubBase, properties.Extra{Options: []properties.Option{}})
		if err != nil {
			t.Errorf("FromBase(%s) with empty options: %v", typ, err)
			continue
		}
		if got := properties.RawOptions(p); len(got) != 0 {
			t.Errorf("RawOptions(%s) = %v, want empty", typ, got)
		}
	}
}

func TestNewEnumerationRequiresOptions(t *testing.T) {
	_, err := properties.NewEnumeration(stubBase, nil)
	var ce *properties.ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConstructionError", err)
	}
	if ce.Type != properties.TypeEnumeration {
		t.Errorf("Type = %q, want %q", ce.Type, properties.TypeEnumeration)
	}
}

func TestFieldValues(t *testing.T) {
	p, err := properties.NewString(properties.Base{Name: "is_polite", GroupName: "social_interaction"})
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}

	want := map[string]any{
		"name":        "is_polite",
		"label":       nil,
		"description": nil,
		"groupName":   "social_interaction",
		"fieldType":   nil,
	}
	if diff := cmp.Diff(want, p.FieldValues()); diff != "" {
		t.Errorf("FieldValues mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldValuesAllSet(t *testing.T) {
	p := mustFromBase(t, properties.TypeEnumeration, stubBase, properties.Extra{Options: trafficLightOptions})

	for k, v := range p.FieldValues() {
		if v == nil || v == "" {
			t.Errorf("field %q is unset", k)
		}
	}
	if got, ok := p.FieldValues()["options"].([]properties.Option); !ok || len(got) != 3 {
		t.Errorf("options field = %#v, want 3 options", p.FieldValues()["options"])
	}
}

func TestRawOptions(t *testing.T) {
	enum := mustFromBase(t, properties.TypeEnumeration, stubBase, properties.Extra{Options: trafficLightOptions})
	if diff := cmp.Diff(trafficLightOptions, properties.RawOptions(enum)); diff != "" {
		t.Errorf("RawOptions mismatch (-want +got):\n%s", diff)
	}

	str := mustFromBase(t, properties.TypeString, stubBase, properties.Extra{})
	got := properties.RawOptions(str)
	if got == nil || len(got) != 0 {
		t.Errorf("RawOptions(string) = %#v, want empty non-nil slice", got)
	}
}

func TestEqual(t *testing.T) {
	str := mustFromBase(t, properties.TypeString, stubBase, properties.Extra{})
	num := mustFromBase(t, properties.TypeNumber, stubBase, properties.Extra{})
	enum := mustFromBase(t, properties.TypeEnumeration, stubBase, properties.Extra{Options: trafficLightOptions})
	reordered := mustFromBase(t, properties.TypeEnumeration, stubBase, properties.Extra{Options: []properties.Option{
		trafficLightOptions[2], trafficLightOptions[1], trafficLightOptions[0],
	}})

	unset := stubBase
	unset.Label = nil
	empty := stubBase
	empty.Label = properties.Ptr("")

	tests := []struct {
		name string
		a, b properties.Property
		want bool
	}{
		{"same variant and attributes", str, mustFromBase(t, properties.TypeString, stubBase, properties.Extra{}), true},
		{"different variant", str, num, false},
		{"same options", enum, mustFromBase(t, properties.TypeEnumeration, stubBase, properties.Extra{Options: trafficLightOptions}), true},
		{"options in another order", enum, reordered, false},
		{"unset label vs empty label", mustFromBase(t, properties.TypeString, unset, properties.Extra{}), mustFromBase(t, properties.TypeString, empty, properties.Extra{}), false},
		{"both nil", nil, nil, true},
		{"one nil", str, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := properties.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeUnsetFieldsAsEmptyStrings(t *testing.T) {
	for _, typ := range []properties.Type{properties.TypeString, properties.TypeNumber, properties.TypeDatetime, properties.TypeBoolean} {
		p := mustFromBase(t, typ, properties.Base{Name: "is_polite", GroupName: "social_interaction"}, properties.Extra{})

		want := properties.Record{
			Name:      "is_polite",
			GroupName: "social_interaction",
			Type:      typ,
			Options:   []properties.Option{},
		}
		if diff := cmp.Diff(want, properties.Encode(p)); diff != "" {
			t.Errorf("Encode(%s) mismatch (-want +got):\n%s", typ, diff)
		}
	}
}
