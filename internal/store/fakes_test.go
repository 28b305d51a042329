package store

import (
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// valuesRow 實作 pgx.Row，依序把 vals 寫入 Scan 的 dest
type valuesRow struct {
	vals []any
	err  error
}

func (r valuesRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		panic("valuesRow.Scan: unexpected number of dest")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

// valuesRows 實作 pgx.Rows，每一列是一組 vals
type valuesRows struct {
	rows    [][]any
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *valuesRows) Close()                                       { r.closed = true }
func (r *valuesRows) Err() error                                   { return r.err }
func (r *valuesRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *valuesRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *valuesRows) Next() bool                                   { return r.idx < len(r.rows) }
func (r *valuesRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := valuesRow{vals: r.rows[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
func (r *valuesRows) Values() ([]any, error) { return nil, nil }
func (r *valuesRows) RawValues() [][]byte    { return nil }
func (r *valuesRows) Conn() *pgx.Conn        { return nil }
