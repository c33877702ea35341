package services

import (
	"context"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
)

type InvestmentReaderSvc interface {
	GetInvestmentByID(ctx context.Context, investmentID int64) (*domain.Investment, error)
	ListInvestments(ctx context.Context, params dto.ListInvestmentsParams) ([]domain.Investment, error)
}

type InvestmentWriterSvc interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID int64, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID int64) error
}

// InvestmentSvcFacade combines the investment read and write services
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
