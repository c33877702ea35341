package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		ID:                 d.ID,
		Type:               d.Type,
		Name:               d.Name,
		Symbol:             d.Symbol,
		Quantity:           d.Quantity,
		CostPrice:          d.CostPrice,
		CurrentPrice:       d.CurrentPrice,
		PurchaseDate:       StringToDate(d.PurchaseDate),
		WealthProductType:  d.WealthProductType,
		AnnualInterestRate: d.AnnualInterestRate,
		MaturityDate:       StringToDate(d.MaturityDate),
		LastAccruedDate:    StringToDate(d.LastAccruedDate),
		Note:               d.Note,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		ID:                 m.ID,
		Type:               m.Type,
		Name:               m.Name,
		Symbol:             m.Symbol,
		Quantity:           m.Quantity,
		CostPrice:          m.CostPrice,
		CurrentPrice:       m.CurrentPrice,
		PurchaseDate:       DateToString(m.PurchaseDate),
		WealthProductType:  m.WealthProductType,
		AnnualInterestRate: m.AnnualInterestRate,
		MaturityDate:       DateToString(m.MaturityDate),
		LastAccruedDate:    DateToString(m.LastAccruedDate),
		Note:               m.Note,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
