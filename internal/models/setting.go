package models

// Setting is a row of the settings table. Value holds the JSONB column as text.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	AuditFields
}
