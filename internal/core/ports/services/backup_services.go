package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// BackupSvcFacade exports, restores and wipes the user's data. Recurring rules are
// outside its scope and survive import and clear.
type BackupSvcFacade interface {
	ExportData(ctx context.Context) (domain.Backup, error)
	// ImportData replaces the current data with backup in a single transaction.
	ImportData(ctx context.Context, backup domain.Backup) error
	ClearData(ctx context.Context) error
}
