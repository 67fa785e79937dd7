//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/domain/schedule"
	"event-reminder/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Send(ctx context.Context, ev *event.Event, label string) map[string]bool {
	args := m.Called(ctx, ev, label)
	return args.Get(0).(map[string]bool)
}

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Exists(ctx context.Context, key commands.NotificationKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockLedger) Record(ctx context.Context, entry commands.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// memoryLedger is a real in-memory ledger for idempotence tests where the
// second run must observe the first run's writes.
type memoryLedger struct {
	mu      sync.Mutex
	entries map[commands.NotificationKey]commands.LedgerEntry
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{entries: map[commands.NotificationKey]commands.LedgerEntry{}}
}

func (l *memoryLedger) Exists(_ context.Context, key commands.NotificationKey) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.entries[key]
	return ok, nil
}

func (l *memoryLedger) Record(_ context.Context, entry commands.LedgerEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries[entry.Key]; ok {
		return nil
	}
	l.entries[entry.Key] = entry
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvaluator(t *testing.T) *schedule.Evaluator {
	t.Helper()
	e, err := schedule.NewEvaluator("America/Lima")
	require.NoError(t, err)
	return e
}

func concertRules() []schedule.Rule {
	return []schedule.Rule{{Label: "4_hours_before", LeadHours: 4}}
}

// concertRow builds a row whose 4_hours_before window contains now.
func concertRow(id string) []string {
	return []string{id, "Band", "Venue", "2025-06-15", "20:00", "Lima"}
}

func windowNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	return time.Date(2025, 6, 15, 16, 0, 0, 0, loc)
}

func TestProcessCategoryRowIsolation(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := newMemoryLedger()
	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"email": true, "discord": true})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())

	rows := [][]string{
		concertRow("c-1"),
		{"c-2", "Band", "Venue", "2025-06-15"}, // short row
		concertRow("c-3"),
		concertRow("c-4"),
		concertRow("c-5"),
	}

	result := p.ProcessCategory(context.Background(), event.CategoryConcert, rows,
		concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 4, result.EventsProcessed)
	assert.Equal(t, 4, result.NotificationsSent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "row 2")
	assert.False(t, result.Failed)
}

func TestProcessCategoryIdempotentAcrossRuns(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := newMemoryLedger()
	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"email": true})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	rows := [][]string{concertRow("c-1")}

	first := p.ProcessCategory(context.Background(), event.CategoryConcert, rows,
		concertRules(), windowNow(t), schedule.GranularityFrequent)
	assert.Equal(t, 1, first.NotificationsSent)

	second := p.ProcessCategory(context.Background(), event.CategoryConcert, rows,
		concertRules(), windowNow(t).Add(30*time.Minute), schedule.GranularityFrequent)
	assert.Equal(t, 0, second.NotificationsSent)
	assert.Empty(t, second.Errors)

	dispatcher.AssertNumberOfCalls(t, "Send", 1)
}

func TestProcessCategoryPartialChannelSuccessIsRecorded(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := new(mockLedger)
	ledger.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	ledger.On("Record", mock.Anything, mock.MatchedBy(func(e commands.LedgerEntry) bool {
		return e.Key.EventID == "c-1" &&
			e.Key.Label == "4_hours_before" &&
			!e.Channels["email"] && e.Channels["discord"]
	})).Return(nil)

	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, "4_hours_before").
		Return(map[string]bool{"email": false, "discord": true})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	result := p.ProcessCategory(context.Background(), event.CategoryConcert,
		[][]string{concertRow("c-1")}, concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 1, result.NotificationsSent)
	assert.Empty(t, result.Errors)
	ledger.AssertExpectations(t)
}

func TestProcessCategoryAllChannelsFailed(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := new(mockLedger)
	ledger.On("Exists", mock.Anything, mock.Anything).Return(false, nil)

	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"email": false, "discord": false})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	result := p.ProcessCategory(context.Background(), event.CategoryConcert,
		[][]string{concertRow("c-1")}, concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 0, result.NotificationsSent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "all channels failed")
	ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestProcessCategoryLedgerWriteFailureStillCounts(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := new(mockLedger)
	ledger.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	ledger.On("Record", mock.Anything, mock.Anything).Return(assert.AnError)

	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"email": true})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	result := p.ProcessCategory(context.Background(), event.CategoryConcert,
		[][]string{concertRow("c-1")}, concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 1, result.NotificationsSent)
	assert.Empty(t, result.Errors)
}

func TestProcessCategoryLedgerLookupFailsOpen(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := new(mockLedger)
	ledger.On("Exists", mock.Anything, mock.Anything).Return(false, assert.AnError)
	ledger.On("Record", mock.Anything, mock.Anything).Return(nil)

	dispatcher := new(mockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]bool{"email": true})

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	result := p.ProcessCategory(context.Background(), event.CategoryConcert,
		[][]string{concertRow("c-1")}, concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 1, result.NotificationsSent)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
}

func TestProcessCategoryNoScheduleEvent(t *testing.T) {
	evaluator := testEvaluator(t)
	ledger := newMemoryLedger()
	dispatcher := new(mockDispatcher)

	p := commands.NewProcessor(evaluator, ledger, dispatcher, testLogger())
	rows := [][]string{{"c-1", "Band", "Venue", "not-a-date", "21:00", "Lima"}}

	result := p.ProcessCategory(context.Background(), event.CategoryConcert, rows,
		concertRules(), windowNow(t), schedule.GranularityFrequent)

	assert.Equal(t, 1, result.EventsProcessed)
	assert.Equal(t, 0, result.NotificationsSent)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "event c-1")
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
