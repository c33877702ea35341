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
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	defaultAccountGroup     = "cash"
	openingBalanceReason    = "Opening balance"
	balanceAdjustmentReason = "Balance adjustment"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledger      portsrepo.TransactionManager
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, ledger portsrepo.TransactionManager, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: applyOptions(options),
		accountRepo: repo,
		ledger:      ledger,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	// Apply defaults for optional fields
	group := req.Group
	if group == "" {
		group = defaultAccountGroup
	}
	includeInNetWorth := true
	if req.IncludeInNetWorth != nil {
		includeInNetWorth = *req.IncludeInNetWorth
	}

	unlock := s.lockWrites()
	defer unlock()

	now := s.now()
	account := domain.Account{
		Name:              name,
		Group:             group,
		Balance:           decimal.Zero,
		Icon:              req.Icon,
		IncludeInNetWorth: includeInNetWorth,
		BillingDay:        req.BillingDay,
		RepaymentDay:      req.RepaymentDay,
		Note:              req.Note,
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	// The account and its opening balance entry are saved together.
	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.SaveAccount(ctx, &account); err != nil {
			return err
		}
		if req.Balance == nil || req.Balance.IsZero() {
			return nil
		}
		entry := domain.NewLedgerEntry(account, domain.TxnOpeningBalance, *req.Balance, openingBalanceReason, s.today(), nil, now)
		if err := recurring.PostEntry(ctx, tx, &entry, now); err != nil {
			return err
		}
		account.Balance = entry.NewBalance
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("name", name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.Int64("account_id", account.ID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not found is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	unlock := s.lockWrites()
	defer unlock()

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Balance is never set here; it only moves through ledger entries.
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = name
	}
	if req.Group != nil && *req.Group != "" {
		account.Group = *req.Group
	}
	if req.Icon != nil {
		account.Icon = req.Icon
	}
	if req.IncludeInNetWorth != nil {
		account.IncludeInNetWorth = *req.IncludeInNetWorth
	}
	if req.BillingDay != nil {
		account.BillingDay = req.BillingDay
	}
	if req.RepaymentDay != nil {
		account.RepaymentDay = req.RepaymentDay
	}
	if req.Note != nil {
		account.Note = req.Note
	}
	account.UpdatedAt = s.now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	unlock := s.lockWrites()
	defer unlock()

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) AdjustBalance(ctx context.Context, accountID int64, req dto.AdjustBalanceRequest) (*domain.Transaction, error) {
	if req.NewBalance == nil {
		return nil, fmt.Errorf("%w: newBalance is required", apperrors.ErrValidation)
	}
	date := req.Date
	if date == "" {
		date = s.today()
	} else if _, ok := domain.ParseDate(date); !ok {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = balanceAdjustmentReason
	}

	unlock := s.lockWrites()
	defer unlock()

	now := s.now()
	var posted *domain.Transaction
	err := s.ledger.WithinTx(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		account, err := tx.FindAccountByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		// Post only the difference; an unchanged balance writes nothing.
		delta := req.NewBalance.Sub(account.Balance)
		if delta.IsZero() {
			return nil
		}
		entry := domain.NewLedgerEntry(*account, domain.TxnAdjustment, delta, reason, date, req.Note, now)
		if err := recurring.PostEntry(ctx, tx, &entry, now); err != nil {
			return err
		}
		posted = &entry
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to adjust account balance", slog.Int64("account_id", accountID))
		}
		return nil, fmt.Errorf("failed to adjust balance of account %d: %w", accountID, err)
	}

	if posted != nil {
		s.LogInfo(ctx, "Account balance adjusted",
			slog.Int64("account_id", accountID),
			slog.String("amount", posted.Amount.String()))
	}
	return posted, nil
}
