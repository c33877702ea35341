package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultInvestmentType = "fund"

type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates the holding service.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade, options ...ServiceOption) portssvc.InvestmentSvcFacade {
	return &investmentService{BaseService: applyOptions(options), investmentRepo: repo}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: investment name is required", apperrors.ErrValidation)
	}
	invType := strings.TrimSpace(req.Type)
	if invType == "" {
		invType = defaultInvestmentType
	}

	now := s.now()
	inv := domain.Investment{
		Type:         invType,
		Name:         name,
		Symbol:       strings.TrimSpace(req.Symbol),
		Quantity:     decimalOrZero(req.Quantity),
		CostPrice:    decimalOrZero(req.CostPrice),
		CurrentPrice: decimalOrZero(req.CurrentPrice),
		PurchaseDate: req.PurchaseDate,
		Note:         req.Note,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},

		WealthProductType:  trimmedOrNil(req.WealthProductType),
		AnnualInterestRate: decimalOrZero(req.AnnualInterestRate),
		MaturityDate:       req.MaturityDate,
		LastAccruedDate:    req.LastAccruedDate,
	}
	if err := validateHolding(inv); err != nil {
		return nil, err
	}

	unlock := s.lockWrites()
	defer unlock()

	if err := s.investmentRepo.SaveInvestment(ctx, &inv); err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("name", name))
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.LogInfo(ctx, "Investment created successfully", slog.Int64("investment_id", inv.ID))
	return &inv, nil
}

func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investment", slog.Int64("investment_id", investmentID))
		}
		return nil, err
	}
	return inv, nil
}

func (s *investmentService) ListInvestments(ctx context.Context, params dto.ListInvestmentsParams) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.ListInvestments(ctx, strings.TrimSpace(params.Type))
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	if invs == nil {
		return []domain.Investment{}, nil
	}
	return invs, nil
}

func (s *investmentService) UpdateInvestment(ctx context.Context, investmentID int64, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	unlock := s.lockWrites()
	defer unlock()

	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil && strings.TrimSpace(*req.Type) != "" {
		inv.Type = strings.TrimSpace(*req.Type)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: investment name cannot be empty", apperrors.ErrValidation)
		}
		inv.Name = name
	}
	if req.Symbol != nil {
		inv.Symbol = strings.TrimSpace(*req.Symbol)
	}
	if req.Quantity != nil {
		inv.Quantity = *req.Quantity
	}
	if req.CostPrice != nil {
		inv.CostPrice = *req.CostPrice
	}
	if req.CurrentPrice != nil {
		inv.CurrentPrice = *req.CurrentPrice
	}
	if req.PurchaseDate != nil {
		inv.PurchaseDate = req.PurchaseDate
	}
	if req.Note != nil {
		inv.Note = req.Note
	}
	// Wealth-product terms; a blank product type clears it.
	if req.WealthProductType != nil {
		inv.WealthProductType = trimmedOrNil(req.WealthProductType)
	}
	if req.AnnualInterestRate != nil {
		inv.AnnualInterestRate = *req.AnnualInterestRate
	}
	if req.MaturityDate != nil {
		inv.MaturityDate = req.MaturityDate
	}
	if req.LastAccruedDate != nil {
		inv.LastAccruedDate = req.LastAccruedDate
	}
	if err := validateHolding(*inv); err != nil {
		return nil, err
	}
	inv.UpdatedAt = s.now()

	if err := s.investmentRepo.UpdateInvestment(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update investment", slog.Int64("investment_id", investmentID))
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}
	return inv, nil
}

func (s *investmentService) DeleteInvestment(ctx context.Context, investmentID int64) error {
	unlock := s.lockWrites()
	defer unlock()

	if err := s.investmentRepo.DeleteInvestment(ctx, investmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investment", slog.Int64("investment_id", investmentID))
		}
		return err
	}
	s.LogInfo(ctx, "Investment deleted", slog.Int64("investment_id", investmentID))
	return nil
}

func validateHolding(inv domain.Investment) error {
	switch {
	case inv.Quantity.IsNegative():
		return fmt.Errorf("%w: quantity cannot be negative", apperrors.ErrValidation)
	case inv.CostPrice.IsNegative():
		return fmt.Errorf("%w: cost price cannot be negative", apperrors.ErrValidation)
	case inv.CurrentPrice.IsNegative():
		return fmt.Errorf("%w: current price cannot be negative", apperrors.ErrValidation)
	case inv.AnnualInterestRate.IsNegative():
		return fmt.Errorf("%w: annual interest rate cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
