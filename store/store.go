// Package store abstracts the tabular store the operators write into. The
// store has no schema: a table is a named list of rows, a row is a flat list
// of text cells. Period tables are created per delivery date, so the set of
// table names grows over time and is discovered, not configured.
package store

import "context"

// TableStore is the contract every backend adapter implements.
//
// ReadRows on a table that does not exist returns an empty slice and a nil
// error: the analytics path treats a missing table as "no data yet", not as
// a failure.
type TableStore interface {
	ListTables(ctx context.Context) ([]string, error)
	ReadRows(ctx context.Context, table string) ([][]string, error)
	AppendRows(ctx context.Context, table string, rows [][]string) error
	// UpdateRow replaces the cells of the data row at the given zero-based
	// index (header excluded).
	UpdateRow(ctx context.Context, table string, index int, cells []string) error
	// EnsureTable creates the table with the given header row if it does
	// not exist yet. Existing tables are left untouched.
	EnsureTable(ctx context.Context, table string, header []string) error
}

// active is the store used by the handlers, set once at startup.
var active TableStore

// Use sets the active store.
func Use(s TableStore) {
	active = s
}

// Get returns the active store.
func Get() TableStore {
	return active
}
