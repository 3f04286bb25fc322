package history

import (
	"context"
	"time"

	"github.com/huangsam/maturity/internal/contract"
	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// BeginRun implements the HistoryStore interface.
func (m *MockHistoryStore) BeginRun(ctx context.Context, startTime time.Time, workbook, command string, configParams map[string]any) (int64, error) {
	args := m.Called(ctx, startTime, workbook, command, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the HistoryStore interface.
func (m *MockHistoryStore) EndRun(ctx context.Context, runID int64, endTime time.Time, totalPriorities int) error {
	args := m.Called(ctx, runID, endTime, totalPriorities)
	return args.Error(0)
}

// RecordPriorities implements the HistoryStore interface.
func (m *MockHistoryStore) RecordPriorities(ctx context.Context, runID int64, entries []schema.PriorityEntry) error {
	args := m.Called(ctx, runID, entries)
	return args.Error(0)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus(ctx context.Context) (schema.HistoryStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRuns(ctx context.Context) ([]schema.HistoryRun, error) {
	args := m.Called(ctx)
	runs, _ := args.Get(0).([]schema.HistoryRun)
	return runs, args.Error(1)
}

// GetAllPriorities implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllPriorities(ctx context.Context) ([]schema.HistoryPriority, error) {
	args := m.Called(ctx)
	priorities, _ := args.Get(0).([]schema.HistoryPriority)
	return priorities, args.Error(1)
}

// Clear implements the HistoryStore interface.
func (m *MockHistoryStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
