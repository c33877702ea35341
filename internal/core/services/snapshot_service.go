package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

type snapshotService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepositoryFacade
}

// NewSnapshotService creates the daily net-worth snapshot service.
func NewSnapshotService(repo portsrepo.SnapshotRepositoryFacade, options ...ServiceOption) portssvc.SnapshotSvcFacade {
	return &snapshotService{BaseService: applyOptions(options), snapshotRepo: repo}
}

var _ portssvc.SnapshotSvcFacade = (*snapshotService)(nil)

func (s *snapshotService) ListSnapshots(ctx context.Context, params dto.ListSnapshotsParams) ([]domain.Snapshot, error) {
	if err := validateDateRange(params.StartDate, params.EndDate); err != nil {
		return nil, err
	}
	snapshots, err := s.snapshotRepo.ListSnapshots(ctx, params.StartDate, params.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list snapshots")
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	if snapshots == nil {
		return []domain.Snapshot{}, nil
	}
	return snapshots, nil
}

func (s *snapshotService) GetLatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.snapshotRepo.FindLatestSnapshot(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find latest snapshot")
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *snapshotService) RecordSnapshot(ctx context.Context, req dto.RecordSnapshotRequest) (*domain.Snapshot, error) {
	if _, ok := domain.ParseDate(req.Date); !ok {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := s.now()
	snapshot := domain.Snapshot{
		Date:                 req.Date,
		NetWorth:             decimalOrZero(req.NetWorth),
		Assets:               decimalOrZero(req.Assets),
		Liabilities:          decimalOrZero(req.Liabilities),
		Investments:          decimalOrZero(req.Investments),
		TotalAssets:          decimalOrZero(req.TotalAssets),
		TotalLiabilities:     decimalOrZero(req.TotalLiabilities),
		TotalInvestmentValue: decimalOrZero(req.TotalInvestmentValue),
		TotalInvestmentCost:  decimalOrZero(req.TotalInvestmentCost),
		InvestmentProfit:     decimalOrZero(req.InvestmentProfit),
		InvestmentProfitRate: decimalOrZero(req.InvestmentProfitRate),
		AuditFields:          domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	unlock := s.lockWrites()
	defer unlock()

	// Recording the same date twice replaces the figures.
	if err := s.snapshotRepo.UpsertSnapshot(ctx, &snapshot); err != nil {
		s.LogError(ctx, err, "Failed to record snapshot", slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	s.LogInfo(ctx, "Snapshot recorded", slog.String("date", snapshot.Date), slog.Int64("snapshot_id", snapshot.ID))
	return &snapshot, nil
}
