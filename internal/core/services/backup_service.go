package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
)

type backupService struct {
	BaseService
	backupRepo portsrepo.BackupRepository
}

// NewBackupService creates the export, import and clear service.
func NewBackupService(repo portsrepo.BackupRepository, options ...ServiceOption) portssvc.BackupSvcFacade {
	return &backupService{BaseService: applyOptions(options), backupRepo: repo}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

func (s *backupService) ExportData(ctx context.Context) (domain.Backup, error) {
	// Exports read a consistent view; the write lock is not needed.
	backup, err := s.backupRepo.ExportData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to export data")
		return domain.Backup{}, fmt.Errorf("failed to export data: %w", err)
	}
	backup.Version = domain.BackupVersion
	backup.ExportedAt = s.now()
	s.LogInfo(ctx, "Data exported",
		slog.Int("accounts", len(backup.Accounts)),
		slog.Int("transactions", len(backup.Transactions)),
		slog.Int("investments", len(backup.Investments)))
	return backup, nil
}

func (s *backupService) ImportData(ctx context.Context, backup domain.Backup) error {
	if err := s.normalizeBackup(&backup); err != nil {
		return err
	}

	unlock := s.lockWrites()
	defer unlock()

	if err := s.backupRepo.ReplaceData(ctx, backup); err != nil {
		s.LogError(ctx, err, "Failed to import data")
		return fmt.Errorf("failed to import data: %w", err)
	}
	s.LogInfo(ctx, "Data imported",
		slog.Int("accounts", len(backup.Accounts)),
		slog.Int("transactions", len(backup.Transactions)),
		slog.Int("investments", len(backup.Investments)),
		slog.Int("snapshots", len(backup.Snapshots)),
		slog.Int("price_records", len(backup.PriceHistory)))
	return nil
}

func (s *backupService) ClearData(ctx context.Context) error {
	unlock := s.lockWrites()
	defer unlock()

	if err := s.backupRepo.ClearData(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear data")
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.LogInfo(ctx, "All data cleared")
	return nil
}

// normalizeBackup fills what older or hand-edited files leave out and rejects
// records the ledger could not store.
func (s *backupService) normalizeBackup(b *domain.Backup) error {
	now := s.now()

	// Records without an ID get one past the highest ID of their table.
	nextAccountID := maxID(b.Accounts, func(a domain.Account) int64 { return a.ID })
	for i := range b.Accounts {
		a := &b.Accounts[i]
		if a.ID <= 0 {
			nextAccountID++
			a.ID = nextAccountID
		}
		a.Name = strings.TrimSpace(a.Name)
		fillAudit(&a.AuditFields, now)
	}

	nextTxnID := maxID(b.Transactions, func(t domain.Transaction) int64 { return t.ID })
	for i := range b.Transactions {
		t := &b.Transactions[i]
		if t.ID <= 0 {
			nextTxnID++
			t.ID = nextTxnID
		}
		t.Date = truncateToDate(t.Date)
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: transaction %d: %v", apperrors.ErrValidation, t.ID, err)
		}
	}

	nextInvID := maxID(b.Investments, func(inv domain.Investment) int64 { return inv.ID })
	for i := range b.Investments {
		inv := &b.Investments[i]
		if inv.ID <= 0 {
			nextInvID++
			inv.ID = nextInvID
		}
		if strings.TrimSpace(inv.Type) == "" {
			inv.Type = defaultInvestmentType
		}
		fillAudit(&inv.AuditFields, now)
		if err := validateHolding(*inv); err != nil {
			return fmt.Errorf("investment %d: %w", inv.ID, err)
		}
	}

	for i := range b.Settings {
		st := &b.Settings[i]
		st.Key = strings.TrimSpace(st.Key)
		if st.Key == "" {
			return fmt.Errorf("%w: setting key cannot be empty", apperrors.ErrValidation)
		}
		if len(st.Value) == 0 {
			st.Value = json.RawMessage("null")
		}
		if !json.Valid(st.Value) {
			return fmt.Errorf("%w: setting %q is not valid JSON", apperrors.ErrValidation, st.Key)
		}
		fillAudit(&st.AuditFields, now)
	}

	nextSnapshotID := maxID(b.Snapshots, func(sn domain.Snapshot) int64 { return sn.ID })
	for i := range b.Snapshots {
		sn := &b.Snapshots[i]
		if sn.ID <= 0 {
			nextSnapshotID++
			sn.ID = nextSnapshotID
		}
		sn.Date = truncateToDate(sn.Date)
		if _, ok := domain.ParseDate(sn.Date); !ok {
			return fmt.Errorf("%w: snapshot %d has no valid date", apperrors.ErrValidation, sn.ID)
		}
		sn.FillSummaryFromTotals()
		fillAudit(&sn.AuditFields, now)
	}

	nextPriceID := maxID(b.PriceHistory, func(p domain.PriceRecord) int64 { return p.ID })
	for i := range b.PriceHistory {
		p := &b.PriceHistory[i]
		if p.ID <= 0 {
			nextPriceID++
			p.ID = nextPriceID
		}
		p.Date = truncateToDate(p.Date)
		if _, ok := domain.ParseDate(p.Date); !ok {
			return fmt.Errorf("%w: price record %d has no valid date", apperrors.ErrValidation, p.ID)
		}
		if p.InvestmentID <= 0 {
			return fmt.Errorf("%w: price record %d must reference an investment", apperrors.ErrValidation, p.ID)
		}
		fillAudit(&p.AuditFields, now)
	}
	return nil
}

func maxID[T any](items []T, id func(T) int64) int64 {
	var highest int64
	for _, item := range items {
		if v := id(item); v > highest {
			highest = v
		}
	}
	return highest
}

func fillAudit(a *domain.AuditFields, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
}

// truncateToDate keeps the date part of an ISO date-time such as
// "2024-03-01T08:00:00Z".
func truncateToDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(domain.DateLayout) {
		if _, ok := domain.ParseDate(s[:len(domain.DateLayout)]); ok {
			return s[:len(domain.DateLayout)]
		}
	}
	return s
}
