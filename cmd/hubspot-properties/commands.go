package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/johnwards/hubspot-contacts/connection"
	"github.com/johnwards/hubspot-contacts/properties"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func listProperties(ctx context.Context, conn connection.Connection, w io.Writer, format string) error {
	props, err := properties.GetAllProperties(ctx, conn)
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}
	return writeProperties(w, format, props)
}

func createProperties(ctx context.Context, conn connection.Connection, w io.Writer, defs []definition) error {
	props, err := buildProperties(defs)
	if err != nil {
		return err
	}
	for _, p := range props {
		created, err := properties.CreateProperty(ctx, p, conn)
		if err != nil {
			return fmt.Errorf("create property %q: %w", p.Base().Name, err)
		}
		slog.Debug("property created", "name", created.Base().Name, "type", properties.TypeOf(created))
		fmt.Fprintf(w, "created %s (%s)\n", created.Base().Name, properties.TypeOf(created))
	}
	return nil
}

func writeProperties(w io.Writer, format string, props []properties.Property) error {
	records := make([]properties.Record, len(props))
	for i, p := range props {
		records[i] = properties.Encode(p)
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPE\tGROUP\tLABEL")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Type, r.GroupName, r.Label)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}
