package dto

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
)

// BackupAccount is an account as exported. A missing includeInNetWorth means true.
type BackupAccount struct {
	domain.Account
	IncludeInNetWorth *bool `json:"includeInNetWorth"`
}

// BackupPayload is the export document and the body accepted by import.
// Settings are flattened into a key/value object as in GET /settings.
type BackupPayload struct {
	Version      int                        `json:"version"`
	ExportedAt   *time.Time                 `json:"exportedAt,omitempty"`
	Accounts     []BackupAccount            `json:"accounts"`
	Transactions []domain.Transaction       `json:"transactions"`
	Investments  []domain.Investment        `json:"investments"`
	Settings     map[string]json.RawMessage `json:"settings"`
	Snapshots    []domain.Snapshot          `json:"snapshots"`
	PriceHistory []domain.PriceRecord       `json:"priceHistory"`
}

// OKResponse acknowledges an operation that has no other result.
type OKResponse struct {
	OK bool `json:"ok"`
}

func ToBackupPayload(b domain.Backup) BackupPayload {
	exportedAt := b.ExportedAt
	accounts := make([]BackupAccount, len(b.Accounts))
	for i, a := range b.Accounts {
		include := a.IncludeInNetWorth
		accounts[i] = BackupAccount{Account: a, IncludeInNetWorth: &include}
	}
	return BackupPayload{
		Version:      b.Version,
		ExportedAt:   &exportedAt,
		Accounts:     accounts,
		Transactions: nonNil(b.Transactions),
		Investments:  nonNil(b.Investments),
		Settings:     ToSettingsMap(b.Settings),
		Snapshots:    nonNil(b.Snapshots),
		PriceHistory: nonNil(b.PriceHistory),
	}
}

// ToDomain converts an uploaded payload. Settings are ordered by key.
func (p BackupPayload) ToDomain() domain.Backup {
	b := domain.Backup{
		Version:      p.Version,
		Accounts:     make([]domain.Account, len(p.Accounts)),
		Transactions: p.Transactions,
		Investments:  p.Investments,
		Snapshots:    p.Snapshots,
		PriceHistory: p.PriceHistory,
	}
	if p.ExportedAt != nil {
		b.ExportedAt = *p.ExportedAt
	}
	for i, a := range p.Accounts {
		acc := a.Account
		acc.IncludeInNetWorth = a.IncludeInNetWorth == nil || *a.IncludeInNetWorth
		b.Accounts[i] = acc
	}
	for key, value := range p.Settings {
		b.Settings = append(b.Settings, domain.Setting{Key: key, Value: value})
	}
	slices.SortFunc(b.Settings, func(x, y domain.Setting) int { return strings.Compare(x.Key, y.Key) })
	return b
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
