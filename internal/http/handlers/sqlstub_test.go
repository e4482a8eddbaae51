package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	query string
	args  []any
}

// stubSQL satisfies infra.SQLExecutor for handler tests. Exec calls are
// recorded; query results are keyed by the full inline SQL constant.
type stubSQL struct {
	execs    []execCall
	execErr  error
	rowData  map[string][]any
	rowsData map[string][][]any
	queryErr error
}

func (s *stubSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.execs = append(s.execs, execCall{query: query, args: args})
	return pgconn.CommandTag{}, s.execErr
}

func (s *stubSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if data, ok := s.rowData[query]; ok {
		return stubRow{values: data}
	}
	return stubRow{}
}

func (s *stubSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return &stubRows{data: s.rowsData[query], idx: -1}, nil
}

func (s *stubSQL) execsFor(query string) []execCall {
	var out []execCall
	for _, call := range s.execs {
		if call.query == query {
			out = append(out, call)
		}
	}
	return out
}

type stubRow struct {
	values []any
}

func (r stubRow) Scan(dest ...any) error {
	if r.values == nil {
		return pgx.ErrNoRows
	}
	return assignValues(dest, r.values)
}

type stubRows struct {
	data [][]any
	idx  int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}
func (r *stubRows) Scan(dest ...any) error {
	return assignValues(dest, r.data[r.idx])
}
func (r *stubRows) Values() ([]any, error) { return r.data[r.idx], nil }
func (r *stubRows) RawValues() [][]byte    { return nil }
func (r *stubRows) Conn() *pgx.Conn        { return nil }

func assignValues(dest, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *int64:
			*d = v.(int64)
		case *[]byte:
			*d = v.([]byte)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("scan: unsupported destination %T", dest[i])
		}
	}
	return nil
}
