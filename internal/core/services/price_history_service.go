package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/shopspring/decimal"
)

type priceHistoryService struct {
	BaseService
	priceRepo      portsrepo.PriceHistoryRepositoryFacade
	investmentRepo portsrepo.InvestmentReader
}

// NewPriceHistoryService creates the service that keeps one price per investment and day.
func NewPriceHistoryService(priceRepo portsrepo.PriceHistoryRepositoryFacade, investmentRepo portsrepo.InvestmentReader, options ...ServiceOption) portssvc.PriceHistorySvcFacade {
	return &priceHistoryService{BaseService: applyOptions(options), priceRepo: priceRepo, investmentRepo: investmentRepo}
}

var _ portssvc.PriceHistorySvcFacade = (*priceHistoryService)(nil)

func (s *priceHistoryService) ListPriceHistory(ctx context.Context, params dto.ListPriceHistoryParams) ([]domain.PriceRecord, error) {
	filter := portsrepo.PriceHistoryFilter{StartDate: params.StartDate, EndDate: params.EndDate}
	if params.InvestmentID != nil {
		filter.InvestmentID = *params.InvestmentID
	}
	if err := validateDateRange(filter.StartDate, filter.EndDate); err != nil {
		return nil, err
	}

	records, err := s.priceRepo.ListPriceHistory(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list price history", slog.Int64("investment_id", filter.InvestmentID))
		return nil, fmt.Errorf("failed to list price history: %w", err)
	}
	if records == nil {
		return []domain.PriceRecord{}, nil
	}
	return records, nil
}

func (s *priceHistoryService) GetPriceByDate(ctx context.Context, params dto.PriceByDateParams) (*domain.PriceRecord, error) {
	if _, ok := domain.ParseDate(params.Date); !ok {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	record, err := s.priceRepo.FindPriceRecordByDate(ctx, params.InvestmentID, params.Date)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find price record",
			slog.Int64("investment_id", params.InvestmentID), slog.String("date", params.Date))
		return nil, fmt.Errorf("failed to get price: %w", err)
	}
	return record, nil
}

func (s *priceHistoryService) RecordPrice(ctx context.Context, req dto.RecordPriceRequest) (*domain.PriceRecord, error) {
	record, err := s.buildRecord(ctx, req.InvestmentID, req.Date, req.Price, req.Type, req.Symbol)
	if err != nil {
		return nil, err
	}

	unlock := s.lockWrites()
	defer unlock()

	// Upsert keeps a single record per investment and day.
	if err := s.priceRepo.UpsertPriceRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to record price",
			slog.Int64("investment_id", record.InvestmentID), slog.String("date", record.Date))
		return nil, fmt.Errorf("failed to record price: %w", err)
	}
	s.LogDebug(ctx, "Price recorded", slog.Int64("price_record_id", record.ID))
	return record, nil
}

func (s *priceHistoryService) UpdatePriceRecord(ctx context.Context, recordID int64, req dto.UpdatePriceRecordRequest) (*domain.PriceRecord, error) {
	record, err := s.buildRecord(ctx, req.InvestmentID, req.Date, req.Price, req.Type, req.Symbol)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	unlock := s.lockWrites()
	defer unlock()

	if err := s.priceRepo.UpdatePriceRecord(ctx, record); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update price record", slog.Int64("price_record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *priceHistoryService) DeletePriceHistoryByInvestment(ctx context.Context, investmentID int64) (int64, error) {
	unlock := s.lockWrites()
	defer unlock()

	deleted, err := s.priceRepo.DeletePriceHistoryByInvestment(ctx, investmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete price history", slog.Int64("investment_id", investmentID))
		return 0, fmt.Errorf("failed to delete price history: %w", err)
	}
	s.LogInfo(ctx, "Price history deleted",
		slog.Int64("investment_id", investmentID), slog.Int64("deleted", deleted))
	return deleted, nil
}

// buildRecord validates the request fields and fills type and symbol from the
// investment when the caller leaves them out.
func (s *priceHistoryService) buildRecord(ctx context.Context, investmentID int64, date string, price *decimal.Decimal, priceType, symbol *string) (*domain.PriceRecord, error) {
	if _, ok := domain.ParseDate(date); !ok {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if price == nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be zero or positive", apperrors.ErrValidation)
	}

	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: investment %d does not exist", apperrors.ErrValidation, investmentID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find investment", slog.Int64("investment_id", investmentID))
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	now := s.now()
	record := &domain.PriceRecord{
		InvestmentID: investmentID,
		Date:         date,
		Price:        *price,
		Type:         trimmedOrNil(priceType),
		Symbol:       trimmedOrNil(symbol),
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if record.Type == nil {
		record.Type = trimmedOrNil(&inv.Type)
	}
	if record.Symbol == nil {
		record.Symbol = trimmedOrNil(&inv.Symbol)
	}
	return record, nil
}

func validateDateRange(start, end string) error {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, ok := domain.ParseDate(d); !ok {
			return fmt.Errorf("%w: dates must be YYYY-MM-DD", apperrors.ErrValidation)
		}
	}
	if start != "" && end != "" && start > end {
		return fmt.Errorf("%w: start date is after end date", apperrors.ErrValidation)
	}
	return nil
}
