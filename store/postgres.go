package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a TableStore backed by a pgx connection pool. The schemaless
// tabular model is kept as-is: a registry of table names plus one physical
// table holding every row as a text array, so period tables can be created
// at runtime without DDL.
type Postgres struct {
	pool *pgxpool.Pool
}

// One statement per entry: pgx's extended protocol rejects multi-statement
// strings.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS ledger_tables (
        name text PRIMARY KEY,
        header text[] NOT NULL DEFAULT '{}',
        created_at timestamptz NOT NULL DEFAULT now()
    )`,
	`CREATE TABLE IF NOT EXISTS ledger_rows (
        table_name text NOT NULL REFERENCES ledger_tables(name),
        row_num int NOT NULL,
        cells text[] NOT NULL,
        PRIMARY KEY (table_name, row_num)
    )`,
}

// NewPostgres connects a pool and makes sure the backing tables exist.
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	log.Println("Successfully connected to the database")
	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) ListTables(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `SELECT name FROM ledger_tables ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (p *Postgres) ReadRows(ctx context.Context, table string) ([][]string, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT cells FROM ledger_rows WHERE table_name = $1 ORDER BY row_num`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", table, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, err
		}
		out = append(out, cells)
	}
	// A table never registered simply yields zero rows, which is the
	// missing-table contract.
	return out, rows.Err()
}

func (p *Postgres) AppendRows(ctx context.Context, table string, rows [][]string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO ledger_tables (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, table); err != nil {
		return err
	}
	var next int
	if err := tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(row_num) + 1, 0) FROM ledger_rows WHERE table_name = $1`, table).Scan(&next); err != nil {
		return err
	}
	for i, cells := range rows {
		if _, err := tx.Exec(ctx,
			`INSERT INTO ledger_rows (table_name, row_num, cells) VALUES ($1, $2, $3)`,
			table, next+i, cells); err != nil {
			return fmt.Errorf("failed to append to %q: %w", table, err)
		}
	}
	return tx.Commit(ctx)
}

func (p *Postgres) UpdateRow(ctx context.Context, table string, index int, cells []string) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE ledger_rows SET cells = $3 WHERE table_name = $1 AND row_num = $2`,
		table, index, cells)
	if err != nil {
		return fmt.Errorf("failed to update row %d of %q: %w", index, table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no row %d in table %q", index, table)
	}
	return nil
}

func (p *Postgres) EnsureTable(ctx context.Context, table string, header []string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO ledger_tables (name, header) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		table, header)
	if err != nil {
		return fmt.Errorf("failed to ensure table %q: %w", table, err)
	}
	return nil
}
