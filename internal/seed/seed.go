// Package seed fills a fresh fake portal with HubSpot's default contact
// property groups and properties.
package seed

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserts the default groups, then the default properties. It is
// idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB) error {
	if err := Groups(ctx, db); err != nil {
		return fmt.Errorf("seed groups: %w", err)
	}
	if err := Properties(ctx, db); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	return nil
}
