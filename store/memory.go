package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-memory TableStore used in tests and for local runs
// without credentials.
type Memory struct {
	mu     sync.RWMutex
	order  []string
	tables map[string][][]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string][][]string)}
}

// Seed replaces the contents of a table, creating it if needed. Test helper.
func (m *Memory) Seed(table string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[table]; !ok {
		m.order = append(m.order, table)
	}
	m.tables[table] = rows
}

func (m *Memory) ListTables(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out, nil
}

func (m *Memory) ReadRows(ctx context.Context, table string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.tables[table]
	if !ok {
		return nil, nil
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		c := make([]string, len(r))
		copy(c, r)
		out[i] = c
	}
	return out, nil
}

func (m *Memory) AppendRows(ctx context.Context, table string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[table]; !ok {
		m.order = append(m.order, table)
	}
	m.tables[table] = append(m.tables[table], rows...)
	return nil
}

func (m *Memory) UpdateRow(ctx context.Context, table string, index int, cells []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[table]
	if !ok || index < 0 || index >= len(rows) {
		return fmt.Errorf("no row %d in table %q", index, table)
	}
	rows[index] = cells
	return nil
}

func (m *Memory) EnsureTable(ctx context.Context, table string, header []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[table]; !ok {
		m.order = append(m.order, table)
		m.tables[table] = nil
	}
	return nil
}
