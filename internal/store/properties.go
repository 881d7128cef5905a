// Package store persists the fake portal's property groups and definitions.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/johnwards/hubspot-contacts/internal/domain"
)

var (
	// ErrConflict is returned when a property or group name is taken.
	ErrConflict = errors.New("conflict")
	// ErrNotFound is returned when a named property does not exist.
	ErrNotFound = errors.New("not found")
	// ErrGroupNotFound is returned when a property names a group that does
	// not exist.
	ErrGroupNotFound = errors.New("group not found")
)

// PropertyStore defines operations for property definitions and groups.
type PropertyStore interface {
	List(ctx context.Context) ([]domain.Property, error)
	Get(ctx context.Context, name string) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)

	ListGroups(ctx context.Context) ([]domain.PropertyGroup, error)
	CreateGroup(ctx context.Context, g *domain.PropertyGroup) (*domain.PropertyGroup, error)

	Reset(ctx context.Context) error
}

// SQLitePropertyStore implements PropertyStore using SQLite.
type SQLitePropertyStore struct {
	db *sql.DB
}

// NewSQLitePropertyStore creates a new SQLitePropertyStore.
func NewSQLitePropertyStore(db *sql.DB) *SQLitePropertyStore {
	return &SQLitePropertyStore{db: db}
}

func encodeOptions(opts []domain.Option) (string, error) {
	if opts == nil {
		opts = []domain.Option{}
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("encode options: %w", err)
	}
	return string(b), nil
}

func decodeOptions(raw string) ([]domain.Option, error) {
	opts := []domain.Option{}
	if raw == "" {
		return opts, nil
	}
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

func scanProperty(row interface{ Scan(dest ...any) error }) (*domain.Property, error) {
	var p domain.Property
	var optionsRaw string
	if err := row.Scan(
		&p.Name, &p.Label, &p.Description, &p.GroupName, &p.FieldType,
		&p.Type, &optionsRaw, &p.DisplayOrder, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	opts, err := decodeOptions(optionsRaw)
	if err != nil {
		return nil, err
	}
	p.Options = opts
	p.FormField = true
	return &p, nil
}

const propertyCols = `name, label, description, group_name, field_type,
	type, options, display_order, created_at`

// List returns every property in creation order.
func (s *SQLitePropertyStore) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+propertyCols+` FROM property_definitions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	props := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

// Get retrieves a single property definition by name.
func (s *SQLitePropertyStore) Get(ctx context.Context, name string) (*domain.Property, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+propertyCols+` FROM property_definitions WHERE name = ?`, name)

	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// Create inserts a new property definition. It fails with ErrConflict when
// the name is taken and with ErrGroupNotFound when the group is unknown. The
// checks and the insert share one transaction.
func (s *SQLitePropertyStore) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	for i := range p.Options {
		p.Options[i].DisplayOrder = i
	}
	optStr, err := encodeOptions(p.Options)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM property_groups WHERE name = ?`, p.GroupName,
	).Scan(&n); err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("group %q: %w", p.GroupName, ErrGroupNotFound)
	}

	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM property_definitions WHERE name = ?`, p.Name,
	).Scan(&n); err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("property %q: %w", p.Name, ErrConflict)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO property_definitions (
			name, label, description, group_name, field_type, type, options, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Label, p.Description, p.GroupName, p.FieldType, p.Type,
		optStr, time.Now().UnixMilli(),
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("property %q: %w", p.Name, ErrConflict)
		}
		return nil, fmt.Errorf("create property: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("property %q: %w", p.Name, ErrConflict)
		}
		return nil, fmt.Errorf("commit property: %w", err)
	}

	return s.Get(ctx, p.Name)
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ListGroups returns every property group ordered by display order.
func (s *SQLitePropertyStore) ListGroups(ctx context.Context) ([]domain.PropertyGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, display_name, display_order FROM property_groups ORDER BY display_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := []domain.PropertyGroup{}
	for rows.Next() {
		var g domain.PropertyGroup
		if err := rows.Scan(&g.Name, &g.DisplayName, &g.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CreateGroup inserts a new property group.
func (s *SQLitePropertyStore) CreateGroup(ctx context.Context, g *domain.PropertyGroup) (*domain.PropertyGroup, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM property_groups WHERE name = ?`, g.Name,
	).Scan(&n); err != nil {
		return nil, fmt.Errorf("check group: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("group %q: %w", g.Name, ErrConflict)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO property_groups (name, display_name, display_order) VALUES (?, ?, ?)`,
		g.Name, g.DisplayName, g.DisplayOrder,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("group %q: %w", g.Name, ErrConflict)
		}
		return nil, fmt.Errorf("create group: %w", err)
	}
	return g, nil
}

// Reset deletes every property and group.
func (s *SQLitePropertyStore) Reset(ctx context.Context) error {
	for _, table := range []string{"property_definitions", "property_groups"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil { //nolint:gosec // table names are constants
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return nil
}
