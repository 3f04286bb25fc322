package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *StoreImpl {
	t.Helper()
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func samplePriorities() []schema.PriorityEntry {
	return []schema.PriorityEntry{
		{Priority: 1, Indicator: "Strategy", Number: "1.2", Measure: "Publish a roadmap", Level: schema.Initial, TotalImpact: 0.42},
		{Priority: 2, Indicator: "Data", Number: "2.1", Measure: "Name data owners", Level: schema.Readiness, TotalImpact: 0.3},
	}
}

func TestStore_NoneBackend(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(ctx, time.Now(), "book.xlsx", "priorities", map[string]any{"limit": 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordPriorities(ctx, 1, samplePriorities()))
	assert.NoError(t, store.EndRun(ctx, 1, time.Now(), 2))
	assert.NoError(t, store.Clear(ctx))

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	runs, err := store.GetAllRuns(ctx)
	assert.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, store.Close())
}

func TestStore_UnsupportedBackend(t *testing.T) {
	_, err := NewStore(schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported backend")
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	runID, err := store.BeginRun(ctx, start, "book.xlsx", "priorities", map[string]any{"goals": "Growth"})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordPriorities(ctx, runID, samplePriorities()))
	require.NoError(t, store.EndRun(ctx, runID, start.Add(1500*time.Millisecond), 2))

	runs, err := store.GetAllRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.NotEmpty(t, run.RunKey)
	assert.True(t, start.Equal(run.StartTime))
	require.NotNil(t, run.EndTime)
	assert.True(t, start.Add(1500*time.Millisecond).Equal(*run.EndTime))
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int32(1500), *run.RunDurationMs)
	assert.Equal(t, "book.xlsx", run.Workbook)
	assert.Equal(t, "priorities", run.Command)
	assert.Equal(t, int32(2), run.TotalPriorities)
	require.NotNil(t, run.ConfigParams)
	assert.JSONEq(t, `{"goals":"Growth"}`, *run.ConfigParams)

	priorities, err := store.GetAllPriorities(ctx)
	require.NoError(t, err)
	require.Len(t, priorities, 2)
	assert.Equal(t, schema.HistoryPriority{
		RunID: runID, Priority: 1, Indicator: "Strategy", Number: "1.2",
		Measure: "Publish a roadmap", Level: 2, TotalImpact: 0.42,
	}, priorities[0])
	assert.Equal(t, int32(2), priorities[1].Priority)
}

func TestStore_RecordPrioritiesEmpty(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	runID, err := store.BeginRun(ctx, time.Now(), "book.xlsx", "priorities", nil)
	require.NoError(t, err)
	assert.NoError(t, store.RecordPriorities(ctx, runID, nil))

	priorities, err := store.GetAllPriorities(ctx)
	require.NoError(t, err)
	assert.Empty(t, priorities)
}

func TestStore_EndRunUnknown(t *testing.T) {
	store := newMemoryStore(t)
	err := store.EndRun(context.Background(), 99, time.Now(), 0)
	assert.ErrorContains(t, err, "run 99")
}

func TestStore_StatusAndClear(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(t)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalRuns)

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)
	id1, err := store.BeginRun(ctx, first, "a.xlsx", "gaps", nil)
	require.NoError(t, err)
	id2, err := store.BeginRun(ctx, second, "b.xlsx", "priorities", nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordPriorities(ctx, id2, samplePriorities()))

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, int64(2), status.TotalRuns)
	assert.Equal(t, int64(2), status.TotalPriorities)
	assert.Equal(t, id2, status.LastRunID)
	assert.True(t, second.Equal(status.LastRunTime))
	assert.True(t, first.Equal(status.OldestRunTime))
	assert.Equal(t, map[string]int64{runsTable: 2, prioritiesTable: 2}, status.TableSizes)
	assert.NotEqual(t, id1, id2)

	require.NoError(t, store.Clear(ctx))
	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRuns)
	assert.Equal(t, int64(0), status.TotalPriorities)
}

func TestStore_ReopenFile(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.BeginRun(ctx, time.Now(), "book.xlsx", "gaps", nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	runs, err := reopened.GetAllRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestNullTime_Scan(t *testing.T) {
	want := time.Date(2026, 5, 4, 3, 2, 1, 500000000, time.UTC)

	tests := []struct {
		name  string
		src   any
		valid bool
	}{
		{"nil", nil, false},
		{"time", want, true},
		{"rfc3339 string", want.Format(time.RFC3339Nano), true},
		{"mysql bytes", []byte("2026-05-04 03:02:01.5"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n nullTime
			require.NoError(t, n.Scan(tt.src))
			assert.Equal(t, tt.valid, n.Valid)
			if tt.valid {
				assert.True(t, want.Equal(n.Time))
				require.NotNil(t, n.ptr())
			} else {
				assert.Nil(t, n.ptr())
			}
		})
	}

	var n nullTime
	assert.Error(t, n.Scan("yesterday"))
	assert.Error(t, n.Scan(42))
}
