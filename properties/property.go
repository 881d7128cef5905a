package properties

import (
	"fmt"
	"slices"
)

// Base holds the attributes shared by every property variant. A nil Label,
// Description or FieldWidget means the attribute is unset.
type Base struct {
	Name        string
	Label       *string
	Description *string
	GroupName   string
	FieldWidget *string
}

// Ptr returns a pointer to s, for filling the optional fields of Base.
func Ptr(s string) *string {
	return &s
}

func (b Base) clone() Base {
	b.Label = clonePtr(b.Label)
	b.Description = clonePtr(b.Description)
	b.FieldWidget = clonePtr(b.FieldWidget)
	return b
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Option is one choice of an enumeration property.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Extra carries the variant-specific attributes accepted by FromBase.
type Extra struct {
	Options []Option
}

// Property is a typed property definition. The set of implementations is
// closed: StringProperty, NumberProperty, DatetimeProperty, BooleanProperty
// and EnumerationProperty.
type Property interface {
	// Base returns a copy of the shared attributes.
	Base() Base
	// FieldValues returns the wire field names mapped to their values, with
	// nil for unset attributes.
	FieldValues() map[string]any

	isProperty()
}

type common struct {
	base Base
}

func (c common) Base() Base { return c.base.clone() }

func (c common) FieldValues() map[string]any {
	return map[string]any{
		"name":        c.base.Name,
		"label":       optional(c.base.Label),
		"description": optional(c.base.Description),
		"groupName":   c.base.GroupName,
		"fieldType":   optional(c.base.FieldWidget),
	}
}

func (common) isProperty() {}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// The zero value of a variant is not a valid property. Build variants with
// FromBase or the New functions; pointers to variants are accepted wherever
// a Property is.
type (
	StringProperty   struct{ common }
	NumberProperty   struct{ common }
	DatetimeProperty struct{ common }
	BooleanProperty  struct{ common }
)

// EnumerationProperty is a property whose value is one of an ordered list of
// options.
type EnumerationProperty struct {
	common
	options []Option
}

// Options returns a copy of the options in display order.
func (p EnumerationProperty) Options() []Option {
	return slices.Clone(p.options)
}

// FieldValues adds the options to the shared field values.
func (p EnumerationProperty) FieldValues() map[string]any {
	fv := p.common.FieldValues()
	fv["options"] = p.Options()
	return fv
}

// ConstructionError reports a property that cannot be built from the given
// attributes.
type ConstructionError struct {
	Type   Type
	Field  string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construct %s property: %s %s", e.Type, e.Field, e.Reason)
}

// FromBase builds the variant registered for t from the shared attributes in
// b and the variant-specific attributes in extra.
func FromBase(t Type, b Base, extra Extra) (Property, error) {
	v, ok := lookup(t)
	if !ok {
		return nil, &ConstructionError{Type: t, Field: "type", Reason: "is not a registered property type"}
	}
	if b.Name == "" {
		return nil, &ConstructionError{Type: t, Field: "name", Reason: "is required"}
	}
	if b.GroupName == "" {
		return nil, &ConstructionError{Type: t, Field: "groupName", Reason: "is required"}
	}

	if !v.withOptions {
		if len(extra.Options) > 0 {
			return nil, &ConstructionError{Type: t, Field: "options", Reason: "are not supported"}
		}
		return v.build(b.clone(), nil), nil
	}

	if len(extra.Options) == 0 {
		return nil, &ConstructionError{Type: t, Field: "options", Reason: "are required"}
	}
	seen := make(map[string]struct{}, len(extra.Options))
	for _, o := range extra.Options {
		if _, dup := seen[o.Label]; dup {
			return nil, &ConstructionError{Type: t, Field: "options", Reason: fmt.Sprintf("repeat label %q", o.Label)}
		}
		seen[o.Label] = struct{}{}
	}
	return v.build(b.clone(), slices.Clone(extra.Options)), nil
}

// NewString builds a StringProperty.
func NewString(b Base) (StringProperty, error) {
	return build[StringProperty](TypeString, b, Extra{})
}

// NewNumber builds a NumberProperty.
func NewNumber(b Base) (NumberProperty, error) {
	return build[NumberProperty](TypeNumber, b, Extra{})
}

// NewDatetime builds a DatetimeProperty.
func NewDatetime(b Base) (DatetimeProperty, error) {
	return build[DatetimeProperty](TypeDatetime, b, Extra{})
}

// NewBoolean builds a BooleanProperty.
func NewBoolean(b Base) (BooleanProperty, error) {
	return build[BooleanProperty](TypeBoolean, b, Extra{})
}

// NewEnumeration builds an EnumerationProperty. At least one option is
// required and option labels must be unique.
func NewEnumeration(b Base, options []Option) (EnumerationProperty, error) {
	return build[EnumerationProperty](TypeEnumeration, b, Extra{Options: options})
}

func build[P Property](t Type, b Base, extra Extra) (P, error) {
	var zero P
	p, err := FromBase(t, b, extra)
	if err != nil {
		return zero, err
	}
	return p.(P), nil
}

// RawOptions returns the options of p in their wire order. It returns an
// empty, non-nil slice for variants without options.
func RawOptions(p Property) []Option {
	if e, ok := unwrap(p).(EnumerationProperty); ok {
		return e.Options()
	}
	return []Option{}
}

// Equal reports whether a and b are the same variant with identical
// attributes. An unset attribute differs from an empty string.
func Equal(a, b Property) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if TypeOf(a) != TypeOf(b) {
		return false
	}
	ab, bb := a.Base(), b.Base()
	if ab.Name != bb.Name || ab.GroupName != bb.GroupName {
		return false
	}
	if !equalPtr(ab.Label, bb.Label) || !equalPtr(ab.Description, bb.Description) || !equalPtr(ab.FieldWidget, bb.FieldWidget) {
		return false
	}
	return slices.Equal(RawOptions(a), RawOptions(b))
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Record is the wire representation of a property.
type Record struct {
	Name        string   `json:"name" yaml:"name"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	GroupName   string   `json:"groupName" yaml:"groupName"`
	FieldType   string   `json:"fieldType" yaml:"fieldType"`
	Type        Type     `json:"type" yaml:"type"`
	Options     []Option `json:"options" yaml:"options"`
}

// Encode returns the full wire record for p. Unset text attributes become
// empty strings.
func Encode(p Property) Record {
	b := p.Base()
	return Record{
		Name:        b.Name,
		Label:       deref(b.Label),
		Description: deref(b.Description),
		GroupName:   b.GroupName,
		FieldType:   deref(b.FieldWidget),
		Type:        TypeOf(p),
		Options:     RawOptions(p),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
