package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the minimal query surface repositories depend on, satisfied by
// both *Connection and *sql.Tx wrappers.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
