package store

import (
	"context"
	"sync"
)

// MemStore keeps tables in process memory. It backs the test suite and is
// handy for local development without a database.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string][][]string)}
}

func (m *MemStore) ReadRange(ctx context.Context, table string, rowStart, rowEnd, colStart, colEnd int) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := m.tables[table]
	// rows[0] is table row 2 (row 1 is the header, which MemStore does not store)
	start := rowStart - 2
	if start < 0 {
		start = 0
	}
	end := len(rows)
	if rowEnd != OpenEnd && rowEnd-1 < end {
		end = rowEnd - 1
	}
	if start >= end {
		return nil, nil
	}

	out := make([][]string, 0, end-start)
	for _, row := range rows[start:end] {
		cells := window(row, colStart, colEnd)
		copied := make([]string, len(cells))
		copy(copied, cells)
		out = append(out, copied)
	}
	return out, nil
}

func (m *MemStore) AppendRow(ctx context.Context, table string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]string, len(row))
	copy(copied, row)
	m.tables[table] = append(m.tables[table], copied)
	return nil
}

func (m *MemStore) UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	i := rowIndex - 2
	if i < 0 || i >= len(rows) {
		return nil
	}
	copied := make([]string, len(row))
	copy(copied, row)
	rows[i] = copied
	return nil
}

func (m *MemStore) ClearRow(ctx context.Context, table string, rowIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	i := rowIndex - 2
	if i < 0 || i >= len(rows) {
		return nil
	}
	m.tables[table] = append(rows[:i], rows[i+1:]...)
	return nil
}
