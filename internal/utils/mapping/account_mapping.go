package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:                d.ID,
		Name:              d.Name,
		Group:             d.Group,
		Balance:           d.Balance,
		Icon:              d.Icon,
		IncludeInNetWorth: d.IncludeInNetWorth,
		BillingDay:        d.BillingDay,
		RepaymentDay:      d.RepaymentDay,
		Note:              d.Note,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                m.ID,
		Name:              m.Name,
		Group:             m.Group,
		Balance:           m.Balance,
		Icon:              m.Icon,
		IncludeInNetWorth: m.IncludeInNetWorth,
		BillingDay:        m.BillingDay,
		RepaymentDay:      m.RepaymentDay,
		Note:              m.Note,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
