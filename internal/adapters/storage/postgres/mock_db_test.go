package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MockDB stands in for the pool behind db.Queries. Every statement it sees is
// recorded in Statements.
type MockDB struct {
	ExecFunc     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFunc    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFunc func(ctx context.Context, sql string, args ...any) pgx.Row

	Statements []string
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.Statements = append(m.Statements, sql)
	if m.ExecFunc == nil {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	return m.ExecFunc(ctx, sql, args...)
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.Statements = append(m.Statements, sql)
	if m.QueryFunc == nil {
		return worldRows(), nil
	}
	return m.QueryFunc(ctx, sql, args...)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.Statements = append(m.Statements, sql)
	if m.QueryRowFunc == nil {
		return &MockRow{ScanFunc: func(...any) error { return pgx.ErrNoRows }}
	}
	return m.QueryRowFunc(ctx, sql, args...)
}

type MockRow struct {
	ScanFunc func(dest ...any) error
}

func (r *MockRow) Scan(dest ...any) error {
	return r.ScanFunc(dest...)
}

// MockRows yields one row per scanner, then ends with Failure (nil for a
// clean end of results).
type MockRows struct {
	scanners []func(dest ...any) error
	pos      int
	closed   bool

	Failure error
}

// worldRows builds a result set that scans each row with the matching scanner.
func worldRows(scanners ...func(dest ...any) error) *MockRows {
	return &MockRows{scanners: scanners}
}

func (r *MockRows) Next() bool {
	if r.closed || r.pos >= len(r.scanners) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *MockRows) Scan(dest ...any) error {
	return r.scanners[r.pos-1](dest...)
}

func (r *MockRows) Close()     { r.closed = true }
func (r *MockRows) Err() error { return r.Failure }

func (r *MockRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *MockRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *MockRows) Values() ([]any, error)                       { return nil, nil }
func (r *MockRows) RawValues() [][]byte                          { return nil }
func (r *MockRows) Conn() *pgx.Conn                              { return nil }
