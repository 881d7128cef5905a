package properties

import (
	"fmt"
	"strings"
)

// Type is the wire token naming a property variant.
type Type string

const (
	TypeString      Type = "string"
	TypeNumber      Type = "number"
	TypeDatetime    Type = "datetime"
	TypeBoolean     Type = "bool"
	TypeEnumeration Type = "enumeration"
)

// variant is one row of the registry.
type variant struct {
	typ         Type
	withOptions bool
	build       func(b Base, opts []Option) Property
}

// registry lists every property variant. It is never modified.
var registry = [...]variant{
	{typ: TypeString, build: func(b Base, _ []Option) Property { return StringProperty{common{b}} }},
	{typ: TypeNumber, build: func(b Base, _ []Option) Property { return NumberProperty{common{b}} }},
	{typ: TypeDatetime, build: func(b Base, _ []Option) Property { return DatetimeProperty{common{b}} }},
	{typ: TypeBoolean, build: func(b Base, _ []Option) Property { return BooleanProperty{common{b}} }},
	{
		typ:         TypeEnumeration,
		withOptions: true,
		build: func(b Base, opts []Option) Property {
			return EnumerationProperty{common: common{b}, options: opts}
		},
	},
}

func lookup(t Type) (variant, bool) {
	for _, v := range registry {
		if v.typ == t {
			return v, true
		}
	}
	return variant{}, false
}

// SupportedTypes returns every registered type token.
func SupportedTypes() []Type {
	out := make([]Type, len(registry))
	for i, v := range registry {
		out[i] = v.typ
	}
	return out
}

// ParseType returns the Type for a wire token. The boolean is false when the
// token is not registered.
func ParseType(token string) (Type, bool) {
	v, ok := lookup(Type(token))
	return v.typ, ok
}

// TypeOf returns the type token of p. It panics if p is not one of the
// variants of this package, or a non-nil pointer to one.
func TypeOf(p Property) Type {
	switch unwrap(p).(type) {
	case StringProperty:
		return TypeString
	case NumberProperty:
		return TypeNumber
	case DatetimeProperty:
		return TypeDatetime
	case BooleanProperty:
		return TypeBoolean
	case EnumerationProperty:
		return TypeEnumeration
	}
	panic(fmt.Sprintf("properties: unregistered property variant %T", p))
}

// unwrap returns the variant value behind a pointer to a variant, and p
// itself otherwise.
func unwrap(p Property) Property {
	switch v := p.(type) {
	case *StringProperty:
		return derefVariant(v)
	case *NumberProperty:
		return derefVariant(v)
	case *DatetimeProperty:
		return derefVariant(v)
	case *BooleanProperty:
		return derefVariant(v)
	case *EnumerationProperty:
		return derefVariant(v)
	}
	return p
}

func derefVariant[P Property](p *P) P {
	if p == nil {
		panic(fmt.Sprintf("properties: nil %T", p))
	}
	return *p
}

func supportedTypesList() string {
	types := SupportedTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
