package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name              string           `json:"name" binding:"required"`
	Group             string           `json:"group"`   // Optional, defaults to "cash"
	Balance           *decimal.Decimal `json:"balance"` // Optional opening balance, recorded as an opening_balance entry
	Icon              *string          `json:"icon"`
	IncludeInNetWorth *bool            `json:"includeInNetWorth"` // Optional, defaults to true
	BillingDay        *int             `json:"billingDay" binding:"omitempty,min=1,max=31"`
	RepaymentDay      *int             `json:"repaymentDay" binding:"omitempty,min=1,max=31"`
	Note              *string          `json:"note"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// The balance is changed through AdjustBalanceRequest only.
type UpdateAccountRequest struct {
	Name              *string `json:"name" binding:"omitempty,min=1"`
	Group             *string `json:"group"`
	Icon              *string `json:"icon"`
	IncludeInNetWorth *bool   `json:"includeInNetWorth"`
	BillingDay        *int    `json:"billingDay" binding:"omitempty,min=1,max=31"`
	RepaymentDay      *int    `json:"repaymentDay" binding:"omitempty,min=1,max=31"`
	Note              *string `json:"note"`
}

// AdjustBalanceRequest sets an account's balance and records the difference as an
// adjustment entry.
type AdjustBalanceRequest struct {
	NewBalance *decimal.Decimal `json:"newBalance" binding:"required"`
	Reason     string           `json:"reason"`
	Note       *string          `json:"note"`
	Date       string           `json:"date" binding:"omitempty,isodate"` // Defaults to today
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Group             string          `json:"group"`
	Balance           decimal.Decimal `json:"balance"`
	Icon              *string         `json:"icon"`
	IncludeInNetWorth bool            `json:"includeInNetWorth"`
	BillingDay        *int            `json:"billingDay"`
	RepaymentDay      *int            `json:"repaymentDay"`
	Note              *string         `json:"note"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                acc.ID,
		Name:              acc.Name,
		Group:             acc.Group,
		Balance:           acc.Balance,
		Icon:              acc.Icon,
		IncludeInNetWorth: acc.IncludeInNetWorth,
		BillingDay:        acc.BillingDay,
		RepaymentDay:      acc.RepaymentDay,
		Note:              acc.Note,
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AdjustBalanceResponse returns the account after an adjustment and the entry it
// produced, which is null when the balance was already the requested one.
type AdjustBalanceResponse struct {
	Account     AccountResponse      `json:"account"`
	Transaction *TransactionResponse `json:"transaction"`
}

func ToAdjustBalanceResponse(acc *domain.Account, entry *domain.Transaction) AdjustBalanceResponse {
	res := AdjustBalanceResponse{Account: ToAccountResponse(acc)}
	if entry != nil {
		t := ToTransactionResponse(entry)
		res.Transaction = &t
	}
	return res
}
