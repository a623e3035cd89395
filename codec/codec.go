// Package codec is the pair of interfaces shared by everything that can
// convert itself to and from JSON text, and the error type the decoding
// side reports.
package codec

import (
	"djson.dev/cursor"
)

// JSON is a simplified version of the json.Marshaler/json.Unmarshaler pair.
// Marshal has no error because encoding is total over the value model.
type JSON interface {
	// Marshal converts the data of the type into JSON, appending it to the
	// provided slice and returning the extended slice.
	Marshal(dst []byte) (b []byte)
	// Unmarshal decodes the JSON form of the type from the cursor, leaving
	// the cursor on the first byte after the production.
	Unmarshal(c *cursor.T) (err error)
}
