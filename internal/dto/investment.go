package dto

import (
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to create a holding.
type CreateInvestmentRequest struct {
	Type         string           `json:"type"` // Optional, defaults to "fund"
	Name         string           `json:"name" binding:"required"`
	Symbol       string           `json:"symbol"`
	Quantity     *decimal.Decimal `json:"quantity"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	PurchaseDate *string          `json:"purchaseDate" binding:"omitempty,isodate"`
	Note         *string          `json:"note"`

	WealthProductType  *string          `json:"wealthProductType"`
	AnnualInterestRate *decimal.Decimal `json:"annualInterestRate"`
	MaturityDate       *string          `json:"maturityDate" binding:"omitempty,isodate"`
	LastAccruedDate    *string          `json:"lastAccruedDate" binding:"omitempty,isodate"`
}

// UpdateInvestmentRequest defines the fields that may be changed on a holding.
type UpdateInvestmentRequest struct {
	Type         *string          `json:"type"`
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	Symbol       *string          `json:"symbol"`
	Quantity     *decimal.Decimal `json:"quantity"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	PurchaseDate *string          `json:"purchaseDate" binding:"omitempty,isodate"`
	Note         *string          `json:"note"`

	WealthProductType  *string          `json:"wealthProductType"`
	AnnualInterestRate *decimal.Decimal `json:"annualInterestRate"`
	MaturityDate       *string          `json:"maturityDate" binding:"omitempty,isodate"`
	LastAccruedDate    *string          `json:"lastAccruedDate" binding:"omitempty,isodate"`
}

// ListInvestmentsParams defines query parameters for listing holdings.
type ListInvestmentsParams struct {
	Type string `form:"type"`
}

type InvestmentResponse struct {
	ID                 int64           `json:"id"`
	Type               string          `json:"type"`
	Name               string          `json:"name"`
	Symbol             string          `json:"symbol"`
	Quantity           decimal.Decimal `json:"quantity"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	MarketValue        decimal.Decimal `json:"marketValue"` // Quantity at the current price, or at cost when no price is known
	PurchaseDate       *string         `json:"purchaseDate"`
	WealthProductType  *string         `json:"wealthProductType"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	MaturityDate       *string         `json:"maturityDate"`
	LastAccruedDate    *string         `json:"lastAccruedDate"`
	Note               *string         `json:"note"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	price, _ := inv.UnitPrice()
	return InvestmentResponse{
		ID:                 inv.ID,
		Type:               inv.Type,
		Name:               inv.Name,
		Symbol:             inv.Symbol,
		Quantity:           inv.Quantity,
		CostPrice:          inv.CostPrice,
		CurrentPrice:       inv.CurrentPrice,
		MarketValue:        inv.Quantity.Mul(price),
		PurchaseDate:       inv.PurchaseDate,
		WealthProductType:  inv.WealthProductType,
		AnnualInterestRate: inv.AnnualInterestRate,
		MaturityDate:       inv.MaturityDate,
		LastAccruedDate:    inv.LastAccruedDate,
		Note:               inv.Note,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func ToListInvestmentResponse(invs []domain.Investment) []InvestmentResponse {
	res := make([]InvestmentResponse, len(invs))
	for i := range invs {
		res[i] = ToInvestmentResponse(&invs[i])
	}
	return res
}

type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}
