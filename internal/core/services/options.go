package services

import (
	"sync"

	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
)

// ServiceOption is a functional option shared by the service constructors
type ServiceOption func(*BaseService)

// WithWriteLock sets the process-wide ledger write lock.
func WithWriteLock(mu sync.Locker) ServiceOption {
	return func(s *BaseService) {
		s.WriteLock = mu
	}
}

// WithClock sets the clock used for timestamps and default dates.
func WithClock(clock recurring.Clock) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func applyOptions(options []ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return newBaseService(base.WriteLock, base.Clock)
}
