package recurring

import (
	"errors"
	"fmt"
)

// ErrOccurrenceDeclined is wrapped by every reason an occurrence is not applied.
// A declined occurrence leaves the ledger untouched and stays due.
var ErrOccurrenceDeclined = errors.New("occurrence declined")

var (
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", ErrOccurrenceDeclined)
	ErrMissingParticipant = fmt.Errorf("%w: rule is missing a required account or investment", ErrOccurrenceDeclined)
	ErrSameAccount        = fmt.Errorf("%w: transfer source and destination are the same account", ErrOccurrenceDeclined)
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrOccurrenceDeclined)
	ErrInvestmentNotFound = fmt.Errorf("%w: investment not found", ErrOccurrenceDeclined)
	ErrNoUsablePrice      = fmt.Errorf("%w: investment has no positive current or cost price", ErrOccurrenceDeclined)
	ErrUnsupportedAction  = fmt.Errorf("%w: unsupported rule action", ErrOccurrenceDeclined)

	ErrUnsupportedFrequency = fmt.Errorf("%w: unsupported rule frequency", ErrOccurrenceDeclined)
)

// IsDeclined reports whether err means the occurrence was not applied.
func IsDeclined(err error) bool {
	return errors.Is(err, ErrOccurrenceDeclined)
}
