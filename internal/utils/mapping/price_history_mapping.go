package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

// ToModelPriceRecord converts a price record to its row. The date must already be valid.
func ToModelPriceRecord(d domain.PriceRecord) models.PriceRecord {
	date, _ := domain.ParseDate(d.Date)
	return models.PriceRecord{
		ID:           d.ID,
		InvestmentID: d.InvestmentID,
		PriceDate:    date,
		Price:        d.Price,
		Type:         d.Type,
		Symbol:       d.Symbol,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPriceRecord(m models.PriceRecord) domain.PriceRecord {
	return domain.PriceRecord{
		ID:           m.ID,
		InvestmentID: m.InvestmentID,
		Date:         domain.FormatDate(m.PriceDate),
		Price:        m.Price,
		Type:         m.Type,
		Symbol:       m.Symbol,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainPriceRecordSlice(ms []models.PriceRecord) []domain.PriceRecord {
	ds := make([]domain.PriceRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPriceRecord(m)
	}
	return ds
}
