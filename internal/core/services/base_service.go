package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/captainmuzzol/OpenPercento/internal/core/recurring"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// WriteLock serialises every ledger write of the process. It is the same lock the
	// recurring runner holds for a pass.
	WriteLock sync.Locker
	Clock     recurring.Clock
}

func newBaseService(writeLock sync.Locker, clock recurring.Clock) BaseService {
	if writeLock == nil {
		writeLock = &sync.Mutex{}
	}
	if clock == nil {
		clock = recurring.SystemClock{}
	}
	return BaseService{WriteLock: writeLock, Clock: clock}
}

// lockWrites takes the write lock and returns its release.
func (s *BaseService) lockWrites() func() {
	s.WriteLock.Lock()
	return s.WriteLock.Unlock
}

func (s *BaseService) now() time.Time {
	return s.Clock.Now()
}

// today returns the current calendar date as YYYY-MM-DD.
func (s *BaseService) today() string {
	return domain.FormatDate(s.Clock.Today())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
