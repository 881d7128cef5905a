package properties

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/johnwards/hubspot-contacts/connection"
	"github.com/johnwards/hubspot-contacts/internal/generic"
)

const propertiesPath = "/properties"

// GetAllProperties fetches every property definition of the portal, in the
// order the portal lists them. Errors from conn are returned unchanged.
func GetAllProperties(ctx context.Context, conn connection.Connection) ([]Property, error) {
	data, err := conn.SendRequest(ctx, http.MethodGet, propertiesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return DecodeAll(data)
}

// CreateProperty creates p on the portal and returns the property as stored
// there. Unset attributes are left out of the request. Errors from conn,
// such as a *connection.ClientError for a duplicate name or an unknown
// group, are returned unchanged.
func CreateProperty(ctx context.Context, p Property, conn connection.Connection) (Property, error) {
	if err := checkBuilt(p); err != nil {
		return nil, err
	}
	body := generic.RemoveUnsetValues(RequestBody(p))
	path := propertiesPath + "/" + url.PathEscape(p.Base().Name)

	data, err := conn.SendRequest(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return nil, err
	}
	created, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode created property: %w", err)
	}
	return created, nil
}

// checkBuilt rejects variants that bypassed the constructors, such as a
// zero StringProperty.
func checkBuilt(p Property) error {
	b := p.Base()
	switch {
	case b.Name == "":
		return &ConstructionError{Type: TypeOf(p), Field: "name", Reason: "is required"}
	case b.GroupName == "":
		return &ConstructionError{Type: TypeOf(p), Field: "groupName", Reason: "is required"}
	}
	return nil
}

// RequestBody returns the field values of p together with its type and
// options, as sent when creating it. Unset attributes are nil.
func RequestBody(p Property) map[string]any {
	body := p.FieldValues()
	body["type"] = TypeOf(p)
	body["options"] = RawOptions(p)
	return body
}
