package store

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier returns canned rows and records what it was asked.
type fakeQuerier struct {
	rows     [][]any
	queryErr error
	rowsErr  error

	calls int
	sql   string
	args  []any
	last  *fakeRows
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls++
	f.sql = sql
	f.args = args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	f.last = &fakeRows{rows: f.rows, err: f.rowsErr, pos: -1}
	return f.last, nil
}

// fakeRows implements pgx.Rows over in-memory values. Scan assigns each value
// to the destination with reflection, so values must match destination types.
type fakeRows struct {
	rows   [][]any
	err    error
	pos    int
	closed bool
}

func (r *fakeRows) Close() { r.closed = true }

func (r *fakeRows) Err() error { return r.err }

func (r *fakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.rows)))
}

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos >= len(r.rows) {
		r.closed = true
		return false
	}
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		sv := reflect.ValueOf(row[i])
		if !sv.Type().AssignableTo(dv.Type()) {
			return fmt.Errorf("scan column %d: cannot assign %s to %s", i, sv.Type(), dv.Type())
		}
		dv.Set(sv)
	}
	return nil
}

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos], nil }

func (r *fakeRows) RawValues() [][]byte { return make([][]byte, len(r.rows[r.pos])) }

func (r *fakeRows) Conn() *pgx.Conn { return nil }
