package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

// ToModelSnapshot converts a snapshot to its row. The date must already be valid.
func ToModelSnapshot(d domain.Snapshot) models.Snapshot {
	date, _ := domain.ParseDate(d.Date)
	return models.Snapshot{
		ID:                   d.ID,
		SnapshotDate:         date,
		NetWorth:             d.NetWorth,
		Assets:               d.Assets,
		Liabilities:          d.Liabilities,
		Investments:          d.Investments,
		TotalAssets:          d.TotalAssets,
		TotalLiabilities:     d.TotalLiabilities,
		TotalInvestmentValue: d.TotalInvestmentValue,
		TotalInvestmentCost:  d.TotalInvestmentCost,
		InvestmentProfit:     d.InvestmentProfit,
		InvestmentProfitRate: d.InvestmentProfitRate,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSnapshot(m models.Snapshot) domain.Snapshot {
	return domain.Snapshot{
		ID:                   m.ID,
		Date:                 domain.FormatDate(m.SnapshotDate),
		NetWorth:             m.NetWorth,
		Assets:               m.Assets,
		Liabilities:          m.Liabilities,
		Investments:          m.Investments,
		TotalAssets:          m.TotalAssets,
		TotalLiabilities:     m.TotalLiabilities,
		TotalInvestmentValue: m.TotalInvestmentValue,
		TotalInvestmentCost:  m.TotalInvestmentCost,
		InvestmentProfit:     m.InvestmentProfit,
		InvestmentProfitRate: m.InvestmentProfitRate,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSnapshotSlice(ms []models.Snapshot) []domain.Snapshot {
	ds := make([]domain.Snapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSnapshot(m)
	}
	return ds
}
