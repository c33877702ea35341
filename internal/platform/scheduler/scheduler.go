// Package scheduler invokes a handler on a fixed interval until its context ends.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSchedulerConfig = errors.New("invalid scheduler config")
	ErrAlreadyStarted         = errors.New("scheduler already started")
)

type Scheduler struct {
	name       string
	interval   time.Duration
	ctx        context.Context
	logger     *slog.Logger
	handler    func(ctx context.Context) error
	runOnStart bool

	mu      sync.Mutex
	ticker  *time.Ticker
	done    chan struct{}
	started bool
}

type Option func(*Scheduler)

func WithName(name string) Option {
	return func(s *Scheduler) {
		s.name = name
	}
}

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

func WithContext(ctx context.Context) Option {
	return func(s *Scheduler) {
		s.ctx = ctx
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

func WithHandler(h func(ctx context.Context) error) Option {
	return func(s *Scheduler) {
		s.handler = h
	}
}

// WithRunOnStart makes the scheduler call the handler once right after Start,
// before the first tick.
func WithRunOnStart(run bool) Option {
	return func(s *Scheduler) {
		s.runOnStart = run
	}
}

func (s *Scheduler) IsValid() error {
	switch {
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "logger cannot be nil")
	case s.interval <= 0:
		return errors.Wrap(ErrInvalidSchedulerConfig, "interval must be positive")
	case s.handler == nil:
		return errors.Wrap(ErrInvalidSchedulerConfig, "handler cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Scheduler, error) {
	s := &Scheduler{name: "scheduler"}

	for _, opt := range opts {
		opt(s)
	}

	return s, s.IsValid()
}

// Start launches the ticking goroutine. Handler runs never overlap.
func (s *Scheduler) Start() error {
	if err := s.IsValid(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return errors.Wrap(ErrAlreadyStarted, s.name)
	}
	s.started = true
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		defer s.ticker.Stop()

		if s.runOnStart {
			s.run()
		}
		for {
			select {
			case <-s.ticker.C:
				s.run()
			case <-s.ctx.Done():
				return
			}
		}
	}()

	s.logger.Info("scheduler started", "name", s.name, "interval", s.interval, "run_on_start", s.runOnStart)
	return nil
}

func (s *Scheduler) run() {
	if s.ctx.Err() != nil {
		return
	}
	if err := s.handler(s.ctx); err != nil {
		s.logger.Error("scheduler handler error", "name", s.name, "interval", s.interval, "error", err)
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

// Done is closed once the ticking goroutine has exited after the context ended.
// It is nil before Start.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}
