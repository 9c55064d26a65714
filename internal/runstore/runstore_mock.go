package runstore

import (
	"time"

	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
	"github.com/stretchr/testify/mock"
)

// MockRunManager is a mock implementation of RunManager for testing.
type MockRunManager struct {
	mock.Mock
}

var _ contract.RunManager = &MockRunManager{} // Compile-time check

// GetRunStore implements the RunManager interface.
func (m *MockRunManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, command string, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, command, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, rowsProcessed int) error {
	args := m.Called(runID, endTime, rowsProcessed)
	return args.Error(0)
}

// RecordModel implements the RunStore interface.
func (m *MockRunStore) RecordModel(runID int64, level schema.PlayingLevel, rowsUsed int, model schema.TransferModel) error {
	args := m.Called(runID, level, rowsUsed, model)
	return args.Error(0)
}

// RecordPrediction implements the RunStore interface.
func (m *MockRunStore) RecordPrediction(runID int64, level schema.PlayingLevel, jumpHeightCM float64, interval schema.PredictionInterval, resamples int, seed int64) error {
	args := m.Called(runID, level, jumpHeightCM, interval, resamples, seed)
	return args.Error(0)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]contract.RunRecord, error) {
	args := m.Called()
	return args.Get(0).([]contract.RunRecord), args.Error(1)
}

// GetAllModels implements the RunStore interface.
func (m *MockRunStore) GetAllModels() ([]contract.ModelRecord, error) {
	args := m.Called()
	return args.Get(0).([]contract.ModelRecord), args.Error(1)
}

// GetAllPredictions implements the RunStore interface.
func (m *MockRunStore) GetAllPredictions() ([]contract.PredictionRecord, error) {
	args := m.Called()
	return args.Get(0).([]contract.PredictionRecord), args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (contract.RunStoreStatus, error) {
	args := m.Called()
	return args.Get(0).(contract.RunStoreStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
