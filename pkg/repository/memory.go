package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/domain/interfaces"
	"github.com/tp-labs/pulsedash/pkg/domain/model"
)

// Memory implements Repository over the in-memory dataset. Records are
// stored once at construction and never mutated afterwards.
type Memory struct {
	mu      sync.RWMutex
	info    model.DatasetInfo
	records []*model.Record
	now     func() time.Time
}

// MemoryOption configures a Memory repository
type MemoryOption func(*Memory)

// WithClock overrides the clock used to resolve period filters
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory creates a memory repository holding the given dataset
func NewMemory(info *model.DatasetInfo, records []*model.Record, opts ...MemoryOption) interfaces.Repository {
	m := &Memory{
		records: records,
		now:     time.Now,
	}
	if info != nil {
		m.info = *info
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListRecords returns copies of the records matching the filter,
// preserving insertion order
func (m *Memory) ListRecords(ctx context.Context, filter *model.FilterSpec) ([]*model.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	results := make([]*model.Record, 0, len(m.records))
	for _, rec := range m.records {
		if !filter.Matches(rec, now) {
			continue
		}
		// Return copies to prevent external modification
		recCopy := *rec
		results = append(results, &recCopy)
	}

	return results, nil
}

// Info returns metadata about the generated dataset
func (m *Memory) Info(ctx context.Context) (*model.DatasetInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.info.ID == "" {
		return nil, goerr.New("dataset info is not set")
	}

	infoCopy := m.info
	return &infoCopy, nil
}

// Close closes the repository
func (m *Memory) Close() error {
	return nil
}
