package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/johnwards/hubspot-contacts/internal/domain"
)

var defaultGroups = []domain.PropertyGroup{
	{Name: "contactinformation", DisplayName: "Contact Information", DisplayOrder: 0},
	{Name: "emailinformation", DisplayName: "Email Information", DisplayOrder: 1},
	{Name: "conversioninformation", DisplayName: "Conversion Information", DisplayOrder: 2},
}

var defaultProperties = []domain.Property{
	{Name: "email", Label: "Email", Description: "A contact's email address", GroupName: "contactinformation", FieldType: "text", Type: "string"},
	{Name: "firstname", Label: "First Name", Description: "A contact's first name", GroupName: "contactinformation", FieldType: "text", Type: "string"},
	{Name: "lastname", Label: "Last Name", Description: "A contact's last name", GroupName: "contactinformation", FieldType: "text", Type: "string"},
	{Name: "num_conversion_events", Label: "Number of Form Submissions", GroupName: "conversioninformation", FieldType: "number", Type: "number"},
	{Name: "createdate", Label: "Create Date", GroupName: "contactinformation", FieldType: "date", Type: "datetime"},
	{Name: "hs_email_optout", Label: "Unsubscribed from all email", GroupName: "emailinformation", FieldType: "booleancheckbox", Type: "bool"},
	{
		Name: "lifecyclestage", Label: "Lifecycle Stage", GroupName: "contactinformation",
		FieldType: "radio", Type: "enumeration",
		Options: []domain.Option{
			{Label: "Subscriber", Value: "subscriber"},
			{Label: "Lead", Value: "lead"},
			{Label: "Customer", Value: "customer"},
		},
	},
}

// Groups inserts the default property groups.
func Groups(ctx context.Context, db *sql.DB) error {
	for _, g := range defaultGroups {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO property_groups (name, display_name, display_order) VALUES (?, ?, ?)`,
			g.Name, g.DisplayName, g.DisplayOrder,
		); err != nil {
			return fmt.Errorf("seed property group %s: %w", g.Name, err)
		}
	}
	return nil
}

// Properties inserts the default property definitions. Groups must exist.
func Properties(ctx context.Context, db *sql.DB) error {
	ts := time.Now().UnixMilli()

	for i, p := range defaultProperties {
		opts := make([]domain.Option, len(p.Options))
		for j, o := range p.Options {
			o.DisplayOrder = j
			opts[j] = o
		}
		raw, err := json.Marshal(opts)
		if err != nil {
			return fmt.Errorf("encode options of %s: %w", p.Name, err)
		}

		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO property_definitions (
				name, label, description, group_name, field_type, type, options, display_order, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Label, p.Description, p.GroupName, p.FieldType, p.Type,
			string(raw), i, ts,
		); err != nil {
			return fmt.Errorf("seed property %s: %w", p.Name, err)
		}
	}
	return nil
}

// PropertyNames returns the names of the seeded properties in list order.
func PropertyNames() []string {
	names := make([]string, len(defaultProperties))
	for i, p := range defaultProperties {
		names[i] = p.Name
	}
	return names
}
