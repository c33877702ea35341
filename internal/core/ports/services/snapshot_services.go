package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

// SnapshotSvcFacade records daily net-worth snapshots.
type SnapshotSvcFacade interface {
	ListSnapshots(ctx context.Context, params dto.ListSnapshotsParams) ([]domain.Snapshot, error)
	// GetLatestSnapshot returns nil without error when nothing was recorded yet.
	GetLatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
	RecordSnapshot(ctx context.Context, req dto.RecordSnapshotRequest) (*domain.Snapshot, error)
}
