package repositories

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// SnapshotRepositoryFacade defines operations on daily net-worth snapshots
type SnapshotRepositoryFacade interface {
	// ListSnapshots retrieves snapshots between the inclusive bounds, ordered by date.
	// An empty bound is open.
	ListSnapshots(ctx context.Context, startDate, endDate string) ([]domain.Snapshot, error)

	// FindLatestSnapshot retrieves the snapshot with the greatest date.
	FindLatestSnapshot(ctx context.Context) (*domain.Snapshot, error)

	// UpsertSnapshot stores the snapshot for its date, replacing the figures of an
	// existing one. The stored ID is set on snapshot.
	UpsertSnapshot(ctx context.Context, snapshot *domain.Snapshot) error
}
