package domain

import "encoding/json"

// Setting is a user preference stored as an arbitrary JSON value under a key.
type Setting struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"` // null when the key has never been set
	AuditFields
}
