package domain

import "time"

// BackupVersion is the format version written by export.
const BackupVersion = 2

// Backup is a full copy of the user's data. Recurring rules are not part of it;
// export leaves them out and import and clear leave them in place.
type Backup struct {
	Version      int
	ExportedAt   time.Time
	Accounts     []Account
	Transactions []Transaction
	Investments  []Investment
	Settings     []Setting
	Snapshots    []Snapshot
	PriceHistory []PriceRecord
}
