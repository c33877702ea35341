// posthog_client.go wraps the posthog client so callers need not care whether analytics is configured.
package utils

import (
	"log/slog"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/posthog/posthog-go"
)

// RecurringPassEvent is the analytics event sent after every recurring pass.
const RecurringPassEvent = "recurring_pass"

// posthogEnqueuer is the part of posthog.Client the wrapper uses.
type posthogEnqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PosthogClientWrapper sends server-side analytics events under a single distinct id.
// The zero value and a nil pointer are valid and drop every event.
type PosthogClientWrapper struct {
	posthogClient posthogEnqueuer
	distinctID    string
	logger        *slog.Logger
}

// InitializePosthogClient returns a wrapper that is disabled when apiKey is empty
// or the client cannot be built.
func InitializePosthogClient(apiKey, endpoint, distinctID string, logger *slog.Logger) *PosthogClientWrapper {
	if apiKey == "" {
		logger.Info("Posthog API key is empty, analytics disabled.")
		return &PosthogClientWrapper{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialize posthog client, analytics disabled", slog.String("error", err.Error()))
		return &PosthogClientWrapper{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogClientWrapper{posthogClient: client, distinctID: distinctID, logger: logger}
}

func (w *PosthogClientWrapper) IsInitialized() bool {
	return w != nil && w.posthogClient != nil
}

// Enqueue queues event for delivery. Failures are logged and otherwise ignored.
func (w *PosthogClientWrapper) Enqueue(event string, properties map[string]any) {
	if !w.IsInitialized() {
		return
	}
	if w.logger != nil {
		w.logger.Debug("Enqueueing event", slog.String("event", event), slog.Any("properties", properties))
	}
	err := w.posthogClient.Enqueue(posthog.Capture{
		DistinctId: w.distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && w.logger != nil {
		w.logger.Warn("Failed to enqueue event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// ReportRecurringPass sends the counts of a finished pass. trigger names what
// started it, e.g. "scheduler" or "http".
func (w *PosthogClientWrapper) ReportRecurringPass(trigger string, result domain.RunResult) {
	if !w.IsInitialized() {
		return
	}
	stuckIDs := make([]int64, 0, len(result.Stuck))
	for _, s := range result.Stuck {
		stuckIDs = append(stuckIDs, s.RuleID)
	}
	w.Enqueue(RecurringPassEvent, map[string]any{
		"trigger":        trigger,
		"processed":      result.Processed,
		"executed":       result.Executed,
		"stuck":          len(result.Stuck),
		"stuck_rule_ids": stuckIDs,
	})
}

// Close flushes queued events.
func (w *PosthogClientWrapper) Close() {
	if !w.IsInitialized() {
		return
	}
	if err := w.posthogClient.Close(); err != nil && w.logger != nil {
		w.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
