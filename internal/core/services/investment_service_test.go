package services_test

import (
	"context"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/core/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInvestmentService(repo *MockInvestmentRepository) portssvc.InvestmentSvcFacade {
	return services.NewInvestmentService(repo, services.WithClock(recurring.FixedClock{At: testNow}))
}

func TestCreateInvestment_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	repo.On("SaveInvestment", ctx, mock.AnythingOfType("*domain.Investment")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Investment).ID = 2 }).
		Return(nil).Once()

	inv, err := newInvestmentService(repo).CreateInvestment(ctx, dto.CreateInvestmentRequest{Name: "Index Fund", CurrentPrice: decp("1.5")})

	require.NoError(t, err)
	assert.Equal(t, int64(2), inv.ID)
	assert.Equal(t, "fund", inv.Type)
	assert.True(t, inv.Quantity.IsZero())
	assert.True(t, inv.CurrentPrice.Equal(dec("1.5")))
	assert.Equal(t, testNow, inv.CreatedAt)
	repo.AssertExpectations(t)
}

func TestCreateInvestment_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateInvestmentRequest
	}{
		{name: "blank name", req: dto.CreateInvestmentRequest{Name: " "}},
		{name: "negative quantity", req: dto.CreateInvestmentRequest{Name: "X", Quantity: decp("-1")}},
		{name: "negative price", req: dto.CreateInvestmentRequest{Name: "X", CostPrice: decp("-0.01")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInvestmentRepository)

			_, err := newInvestmentService(repo).CreateInvestment(context.Background(), tt.req)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			repo.AssertNotCalled(t, "SaveInvestment", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateInvestment_Partial(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	existing := &domain.Investment{ID: 2, Type: "fund", Name: "Index Fund", Quantity: dec("10"), CostPrice: dec("1")}
	repo.On("FindInvestmentByID", ctx, int64(2)).Return(existing, nil).Once()
	repo.On("UpdateInvestment", ctx, mock.MatchedBy(func(i domain.Investment) bool {
		return i.CurrentPrice.Equal(dec("1.2")) && i.Quantity.Equal(dec("10")) && i.Name == "Index Fund"
	})).Return(nil).Once()

	inv, err := newInvestmentService(repo).UpdateInvestment(ctx, 2, dto.UpdateInvestmentRequest{CurrentPrice: decp("1.2")})

	require.NoError(t, err)
	assert.Equal(t, testNow, inv.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestListInvestments_FiltersByType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	repo.On("ListInvestments", ctx, "stock").Return([]domain.Investment{{ID: 1, Type: "stock"}}, nil).Once()

	invs, err := newInvestmentService(repo).ListInvestments(ctx, dto.ListInvestmentsParams{Type: "stock"})

	require.NoError(t, err)
	assert.Len(t, invs, 1)
}

func TestCreateInvestment_WealthProductTerms(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	repo.On("SaveInvestment", ctx, mock.AnythingOfType("*domain.Investment")).Return(nil).Once()

	inv, err := newInvestmentService(repo).CreateInvestment(ctx, dto.CreateInvestmentRequest{
		Type:               "wealth",
		Name:               "Fixed Term 90d",
		WealthProductType:  strp(" fixed "),
		AnnualInterestRate: decp("2.35"),
		MaturityDate:       strp("2024-06-30"),
		LastAccruedDate:    strp("2024-03-01"),
	})

	require.NoError(t, err)
	require.NotNil(t, inv.WealthProductType)
	assert.Equal(t, "fixed", *inv.WealthProductType)
	assert.True(t, inv.AnnualInterestRate.Equal(dec("2.35")))
	assert.Equal(t, "2024-06-30", *inv.MaturityDate)
	assert.Equal(t, "2024-03-01", *inv.LastAccruedDate)
}

func TestCreateInvestment_NegativeInterestRate(t *testing.T) {
	repo := new(MockInvestmentRepository)

	_, err := newInvestmentService(repo).CreateInvestment(context.Background(),
		dto.CreateInvestmentRequest{Name: "X", AnnualInterestRate: decp("-0.5")})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveInvestment", mock.Anything, mock.Anything)
}

func TestUpdateInvestment_ClearsBlankWealthProductType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestmentRepository)
	existing := &domain.Investment{ID: 4, Type: "wealth", Name: "Deposit", WealthProductType: strp("fixed"), AnnualInterestRate: dec("1.8")}
	repo.On("FindInvestmentByID", ctx, int64(4)).Return(existing, nil).Once()
	repo.On("UpdateInvestment", ctx, mock.MatchedBy(func(i domain.Investment) bool {
		return i.WealthProductType == nil && i.AnnualInterestRate.Equal(dec("1.8")) && *i.MaturityDate == "2025-01-01"
	})).Return(nil).Once()

	_, err := newInvestmentService(repo).UpdateInvestment(ctx, 4, dto.UpdateInvestmentRequest{
		WealthProductType: strp("  "),
		MaturityDate:      strp("2025-01-01"),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
