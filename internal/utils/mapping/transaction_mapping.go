package mapping

import (
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/models"
)

// ToModelTransaction converts a domain ledger entry to its row.
// The date must already be valid; see domain.Transaction.Validate.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	date, _ := domain.ParseDate(d.Date)
	return models.Transaction{
		ID:              d.ID,
		AccountID:       d.AccountID,
		Type:            string(d.Type),
		PreviousBalance: d.PreviousBalance,
		NewBalance:      d.NewBalance,
		Amount:          d.Amount,
		Reason:          d.Reason,
		TxnDate:         date,
		Note:            d.Note,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a row to a domain ledger entry
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		AccountID:       m.AccountID,
		Type:            domain.TransactionType(m.Type),
		PreviousBalance: m.PreviousBalance,
		NewBalance:      m.NewBalance,
		Amount:          m.Amount,
		Reason:          m.Reason,
		Date:            domain.FormatDate(m.TxnDate),
		Note:            m.Note,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts rows to domain ledger entries
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
