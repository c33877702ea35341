package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/apperrors"
	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	portsrepo "github.com/captainmuzzol/OpenPercento/internal/core/ports/repositories"
)

const defaultIncomeReason = "Recurring income"

// Applier applies a single occurrence of a rule inside an open ledger transaction.
//
// A nil error means the occurrence was applied. An error wrapping
// ErrOccurrenceDeclined means nothing was written and the occurrence stays due.
// Any other error is a store failure; the caller must roll the transaction back.
type Applier interface {
	Apply(ctx context.Context, tx portsrepo.LedgerTx, rule domain.RecurringRule, date string) error
}

// EffectApplier is the Applier for income, transfer and dca rules.
type EffectApplier struct {
	clock Clock
}

// NewEffectApplier creates an applier stamping entries with clock.Now().
func NewEffectApplier(clock Clock) *EffectApplier {
	if clock == nil {
		clock = SystemClock{}
	}
	return &EffectApplier{clock: clock}
}

var _ Applier = (*EffectApplier)(nil)

func (a *EffectApplier) Apply(ctx context.Context, tx portsrepo.LedgerTx, rule domain.RecurringRule, date string) error {
	if !rule.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	now := a.clock.Now()
	switch p := rule.Payload.(type) {
	case domain.IncomePayload:
		return a.applyIncome(ctx, tx, rule, p, date, now)
	case domain.TransferPayload:
		return a.applyTransfer(ctx, tx, rule, p, date, now)
	case domain.DCAPayload:
		return a.applyDCA(ctx, tx, rule, p, date, now)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAction, rule.Action())
	}
}

func (a *EffectApplier) applyIncome(ctx context.Context, tx portsrepo.LedgerTx, rule domain.RecurringRule, p domain.IncomePayload, date string, now time.Time) error {
	if p.AccountID == 0 {
		return ErrMissingParticipant
	}
	account, err := loadAccount(ctx, tx, p.AccountID)
	if err != nil {
		return err
	}

	entry := domain.NewLedgerEntry(*account, domain.TxnRecurringIncome, rule.Amount, rule.NoteOr(defaultIncomeReason), date, rule.Note, now)
	return PostEntry(ctx, tx, &entry, now)
}

func (a *EffectApplier) applyTransfer(ctx context.Context, tx portsrepo.LedgerTx, rule domain.RecurringRule, p domain.TransferPayload, date string, now time.Time) error {
	if p.FromAccountID == 0 || p.ToAccountID == 0 {
		return ErrMissingParticipant
	}
	if p.FromAccountID == p.ToAccountID {
		return ErrSameAccount
	}

	from, err := loadAccount(ctx, tx, p.FromAccountID)
	if err != nil {
		return err
	}
	to, err := loadAccount(ctx, tx, p.ToAccountID)
	if err != nil {
		return err
	}

	reason := rule.NoteOr(fmt.Sprintf("Recurring transfer: %s → %s", from.DisplayName(), to.DisplayName()))
	out := domain.NewLedgerEntry(*from, domain.TxnRecurringTransferOut, rule.Amount.Neg(), reason, date, rule.Note, now)
	in := domain.NewLedgerEntry(*to, domain.TxnRecurringTransferIn, rule.Amount, reason, date, rule.Note, now)

	if err := PostEntry(ctx, tx, &out, now); err != nil {
		return err
	}
	return PostEntry(ctx, tx, &in, now)
}

func (a *EffectApplier) applyDCA(ctx context.Context, tx portsrepo.LedgerTx, rule domain.RecurringRule, p domain.DCAPayload, date string, now time.Time) error {
	if p.FromAccountID == 0 || p.InvestmentID == 0 {
		return ErrMissingParticipant
	}

	account, err := loadAccount(ctx, tx, p.FromAccountID)
	if err != nil {
		return err
	}
	investment, err := tx.FindInvestmentByIDForUpdate(ctx, p.InvestmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrInvestmentNotFound, p.InvestmentID)
		}
		return fmt.Errorf("failed to load investment %d: %w", p.InvestmentID, err)
	}

	purchase, ok := investment.Buy(rule.Amount)
	if !ok {
		return fmt.Errorf("%w: investment %d", ErrNoUsablePrice, p.InvestmentID)
	}

	reason := rule.NoteOr(fmt.Sprintf("DCA: %s → %s", account.DisplayName(), investment.DisplayName()))
	entry := domain.NewLedgerEntry(*account, domain.TxnDCAOut, rule.Amount.Neg(), reason, date, rule.Note, now)
	if err := PostEntry(ctx, tx, &entry, now); err != nil {
		return err
	}

	if err := tx.UpdateInvestmentHolding(ctx, investment.ID, purchase.NewQuantity, purchase.NewCostPrice, now); err != nil {
		return fmt.Errorf("failed to update investment %d holding: %w", investment.ID, err)
	}
	return nil
}

func loadAccount(ctx context.Context, tx portsrepo.LedgerTx, id int64) (*domain.Account, error) {
	account, err := tx.FindAccountByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("failed to load account %d: %w", id, err)
	}
	return account, nil
}

// PostEntry moves the account balance to entry.NewBalance and appends the entry.
func PostEntry(ctx context.Context, tx portsrepo.LedgerTx, entry *domain.Transaction, now time.Time) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := tx.UpdateAccountBalance(ctx, entry.AccountID, entry.NewBalance, now); err != nil {
		return fmt.Errorf("failed to update account %d balance: %w", entry.AccountID, err)
	}
	if err := tx.SaveTransaction(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s entry for account %d: %w", entry.Type, entry.AccountID, err)
	}
	return nil
}
