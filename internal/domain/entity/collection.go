package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	errs "github.com/amirhossein-jamali/code-clicker-api/internal/domain/error"
)

// Collection is an ordered list of opaque records (purchased upgrades or
// buildings). The server never interprets the records themselves.
type Collection []json.RawMessage

// ParseCollection strictly decodes a JSON array into a Collection.
// Each element is compacted so equal input always serializes the same way.
func ParseCollection(data []byte) (Collection, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: collection must be a JSON array: %s", errs.ErrInvalidRequest, err.Error())
	}
	if items == nil {
		return nil, fmt.Errorf("%w: collection must be a JSON array", errs.ErrInvalidRequest)
	}

	collection := make(Collection, 0, len(items))
	for _, item := range items {
		var buf bytes.Buffer
		if err := json.Compact(&buf, item); err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error())
		}
		collection = append(collection, json.RawMessage(buf.Bytes()))
	}
	return collection, nil
}

// NormalizeCollection accepts either a structured JSON array or a string
// holding a serialized array, as older clients send both. Anything it cannot
// read collapses to an empty collection so a client bug never blocks a save;
// ok reports whether the input was usable as-is.
func NormalizeCollection(raw json.RawMessage) (collection Collection, ok bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Collection{}, true
	}

	if trimmed[0] == '"' {
		var serialized string
		if err := json.Unmarshal(trimmed, &serialized); err != nil {
			return Collection{}, false
		}
		trimmed = bytes.TrimSpace([]byte(serialized))
	}

	parsed, err := ParseCollection(trimmed)
	if err != nil {
		return Collection{}, false
	}
	return parsed, true
}

// MarshalJSON always produces an array, never null
func (c Collection) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(c))
}

// Bytes returns the canonical serialized form stored in the database
func (c Collection) Bytes() []byte {
	// Elements are already valid compacted JSON, so marshaling cannot fail.
	data, _ := c.MarshalJSON()
	return data
}

// Len returns the number of records
func (c Collection) Len() int {
	return len(c)
}
