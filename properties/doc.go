// Package properties models HubSpot contact property definitions.
//
// A property is one of a closed set of typed variants (string, number,
// datetime, bool and enumeration). Records read from the portal are
// checked against the shape expected for their type by Decode and
// DecodeAll; Encode and FieldValues produce the wire form sent back.
// GetAllProperties and CreateProperty run those steps around a single
// request on a connection.Connection.
package properties
