package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// BackupRepository reads and replaces the whole data set. Each method runs in a
// single database transaction.
type BackupRepository interface {
	// ExportData reads every account, transaction, investment, setting, snapshot and
	// price record from one consistent view.
	ExportData(ctx context.Context) (domain.Backup, error)

	// ReplaceData clears the data set and inserts backup with its original IDs.
	// Recurring rules are left untouched.
	ReplaceData(ctx context.Context, backup domain.Backup) error

	// ClearData removes everything except recurring rules.
	ClearData(ctx context.Context) error
}
