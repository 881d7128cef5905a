// Package domain holds the records the fake portal stores and serves.
package domain

// Property is a contact property definition as the contacts v1 API returns
// it. The fields after Options are portal-managed and read-only for clients.
type Property struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	GroupName   string   `json:"groupName"`
	FieldType   string   `json:"fieldType"`
	Type        string   `json:"type"`
	Options     []Option `json:"options"`

	DisplayOrder  int   `json:"displayOrder"`
	FormField     bool  `json:"formField"`
	ReadOnlyValue bool  `json:"readOnlyValue"`
	Hidden        bool  `json:"hidden"`
	CreatedAt     int64 `json:"createdAt"`
}

// Option is one choice of an enumeration property.
type Option struct {
	Label        string `json:"label"`
	Value        string `json:"value"`
	DisplayOrder int    `json:"displayOrder"`
	Hidden       bool   `json:"hidden"`
}

// PropertyGroup is a named group properties belong to.
type PropertyGroup struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	DisplayOrder int    `json:"displayOrder"`
}
