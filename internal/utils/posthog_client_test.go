package utils

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/captainmuzzol/OpenPercento/internal/core/domain"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	messages []posthog.Message
	err      error
	closed   bool
}

func (r *recordingEnqueuer) Enqueue(m posthog.Message) error {
	r.messages = append(r.messages, m)
	return r.err
}

func (r *recordingEnqueuer) Close() error {
	r.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializePosthogClient_EmptyKeyDisables(t *testing.T) {
	w := InitializePosthogClient("", "https://eu.i.posthog.com", "server", discardLogger())
	assert.False(t, w.IsInitialized())

	// Every call is a no-op on a disabled wrapper.
	w.Enqueue("anything", nil)
	w.ReportRecurringPass("scheduler", domain.RunResult{Processed: 1})
	w.Close()
}

func TestPosthogClientWrapper_NilIsSafe(t *testing.T) {
	var w *PosthogClientWrapper
	assert.False(t, w.IsInitialized())
	w.ReportRecurringPass("http", domain.RunResult{})
	w.Close()
}

func TestReportRecurringPass_SendsCounts(t *testing.T) {
	rec := &recordingEnqueuer{}
	w := &PosthogClientWrapper{posthogClient: rec, distinctID: "home-ledger", logger: discardLogger()}

	w.ReportRecurringPass("scheduler", domain.RunResult{
		Processed: 3,
		Executed:  2,
		Stuck:     []domain.StuckRule{{RuleID: 9, NextRun: "2024-02-01", Reason: "occurrence declined"}},
	})

	require.Len(t, rec.messages, 1)
	capture, ok := rec.messages[0].(posthog.Capture)
	require.True(t, ok)
	assert.Equal(t, "home-ledger", capture.DistinctId)
	assert.Equal(t, RecurringPassEvent, capture.Event)
	assert.Equal(t, "scheduler", capture.Properties["trigger"])
	assert.Equal(t, 3, capture.Properties["processed"])
	assert.Equal(t, 2, capture.Properties["executed"])
	assert.Equal(t, 1, capture.Properties["stuck"])
	assert.Equal(t, []int64{9}, capture.Properties["stuck_rule_ids"])
}

func TestEnqueue_ErrorIsSwallowed(t *testing.T) {
	rec := &recordingEnqueuer{err: errors.New("queue full")}
	w := &PosthogClientWrapper{posthogClient: rec, distinctID: "server", logger: discardLogger()}

	w.Enqueue("x", map[string]any{"a": 1})
	assert.Len(t, rec.messages, 1)

	w.Close()
	assert.True(t, rec.closed)
}
