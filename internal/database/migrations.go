package database

// migrations holds the schema history. Each entry is one version; never edit
// an entry once released, append a new one instead.
var migrations = [][]string{
	{
		`CREATE TABLE property_groups (
			name TEXT PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			display_order INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE property_definitions (
			name TEXT PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			group_name TEXT NOT NULL REFERENCES property_groups(name),
			field_type TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			options TEXT NOT NULL DEFAULT '[]',
			display_order INTEGER NOT NULL DEFAULT -1,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX idx_property_definitions_group ON property_definitions(group_name)`,
	},
}
