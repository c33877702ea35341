package services_test

import (
	"context"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordSnapshot_OmittedFiguresAreZero(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSnapshotRepository)
	repo.On("UpsertSnapshot", ctx, mock.MatchedBy(func(s *domain.Snapshot) bool {
		return s.Date == "2024-03-10" && s.NetWorth.Equal(dec("1500")) && s.Liabilities.IsZero() && s.UpdatedAt.Equal(testNow)
	})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Snapshot).ID = 4 }).Return(nil).Once()

	svc := services.NewSnapshotService(repo, services.WithClock(recurring.FixedClock{At: testNow}))
	snapshot, err := svc.RecordSnapshot(ctx, dto.RecordSnapshotRequest{Date: "2024-03-10", NetWorth: decp("1500")})

	require.NoError(t, err)
	assert.Equal(t, int64(4), snapshot.ID)
	repo.AssertExpectations(t)
}

func TestRecordSnapshot_BadDate(t *testing.T) {
	repo := new(MockSnapshotRepository)

	_, err := services.NewSnapshotService(repo).RecordSnapshot(context.Background(), dto.RecordSnapshotRequest{Date: "2024-13-01"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpsertSnapshot", mock.Anything, mock.Anything)
}

func TestGetLatestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("none recorded", func(t *testing.T) {
		repo := new(MockSnapshotRepository)
		repo.On("FindLatestSnapshot", ctx).Return(nil, apperrors.ErrNotFound).Once()

		snapshot, err := services.NewSnapshotService(repo).GetLatestSnapshot(ctx)

		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(MockSnapshotRepository)
		repo.On("FindLatestSnapshot", ctx).Return(nil, assert.AnError).Once()

		_, err := services.NewSnapshotService(repo).GetLatestSnapshot(ctx)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestListSnapshots_Bounds(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSnapshotRepository)
	repo.On("ListSnapshots", ctx, "2024-01-01", "").Return([]domain.Snapshot{{ID: 1, Date: "2024-01-02"}}, nil).Once()

	snapshots, err := services.NewSnapshotService(repo).ListSnapshots(ctx, dto.ListSnapshotsParams{StartDate: "2024-01-01"})

	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}
