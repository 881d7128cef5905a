package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/johnwards/hubspot-contacts/properties"
)

// definition is one entry of a definitions file. Absent text fields stay
// unset and are not sent to the portal.
type definition struct {
	Name        string              `yaml:"name"`
	Label       *string             `yaml:"label"`
	Description *string             `yaml:"description"`
	GroupName   string              `yaml:"groupName"`
	FieldType   *string             `yaml:"fieldType"`
	Type        string              `yaml:"type"`
	Options     []properties.Option `yaml:"options"`
}

// parseDefinitions reads a YAML sequence of definitions. JSON arrays parse
// too, since YAML is a superset of JSON.
func parseDefinitions(r io.Reader) ([]definition, error) {
	var defs []definition
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("definitions file is empty")
		}
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	return defs, nil
}

// property builds the typed property described by d.
func (d definition) property() (properties.Property, error) {
	t, ok := properties.ParseType(d.Type)
	if !ok {
		return nil, fmt.Errorf("property %q: unsupported type %q", d.Name, d.Type)
	}
	b := properties.Base{
		Name:        d.Name,
		Label:       d.Label,
		Description: d.Description,
		GroupName:   d.GroupName,
		FieldWidget: d.FieldType,
	}
	return properties.FromBase(t, b, properties.Extra{Options: d.Options})
}

// buildProperties converts every definition, failing on the first invalid
// one before anything is sent.
func buildProperties(defs []definition) ([]properties.Property, error) {
	out := make([]properties.Property, 0, len(defs))
	for i, d := range defs {
		p, err := d.property()
		if err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
