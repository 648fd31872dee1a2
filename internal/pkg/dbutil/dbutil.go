package dbutil

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Finalize rewrites the builder's MySQL-style placeholders into the
// $N form lib/pq expects.
func Finalize(query string, args []interface{}) (string, []interface{}) {
	return sqlx.Rebind(sqlx.DOLLAR, query), args
}

// IsConflict reports whether err is a postgres unique-constraint
// violation (class 23505).
func IsConflict(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsUnavailable reports whether err indicates the database itself is
// unreachable rather than a statement-level failure. Postgres class 08
// is connection_exception.
func IsUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(string(pgErr.Code), "08")
	}
	return false
}
