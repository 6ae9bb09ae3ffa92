package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/shopledger/shopledger/internal/apperrors"
)

// dialect captures the few places SQLite and PostgreSQL disagree.
// Queries are written with ? placeholders and rebound for PostgreSQL.
type dialect struct {
	name string
}

var (
	sqliteDialect   = dialect{name: "sqlite3"}
	postgresDialect = dialect{name: "pgx"}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case sqliteDialect.name:
		return sqliteDialect, nil
	case postgresDialect.name:
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d dialect) isPostgres() bool {
	return d.name == postgresDialect.name
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (d dialect) rebind(query string) string {
	if !d.isPostgres() {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// forUpdate is appended to row reads inside ledger transactions.
// SQLite has no row locks; its immediate transactions already hold the write lock.
func (d dialect) forUpdate() string {
	if d.isPostgres() {
		return " FOR UPDATE"
	}
	return ""
}

// maxNumericSaleIDQuery selects the largest sale id consisting only of decimal digits.
func (d dialect) maxNumericSaleIDQuery() string {
	if d.isPostgres() {
		return `SELECT COALESCE(MAX(id::bigint), 0) FROM sales WHERE id ~ '^[0-9]+$'`
	}
	return `SELECT COALESCE(MAX(CAST(id AS INTEGER)), 0) FROM sales WHERE id <> '' AND id NOT GLOB '*[^0-9]*'`
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// isConstraintViolation reports whether err is a foreign key, unique, not-null or check failure.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 23: integrity constraint violation
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}

// translateError turns a driver error into the application error taxonomy.
// entity names the row kind for NotFound messages; op describes the failed operation.
func translateError(err error, entity, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", entity))
	case isConstraintViolation(err):
		return apperrors.NewConstraintError(fmt.Sprintf("failed to %s: constraint violation", op), err)
	default:
		return apperrors.NewAppError(nil, fmt.Sprintf("failed to %s", op), err)
	}
}

// expectAffected returns NotFound when an update or delete matched no rows.
func expectAffected(res sql.Result, entity, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return translateError(err, entity, op)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", entity))
	}
	return nil
}

// assignments builds the SET list of a partial UPDATE.
type assignments struct {
	columns []string
	args    []any
}

func (a *assignments) addIf(ok bool, column string, value any) {
	if !ok {
		return
	}
	a.columns = append(a.columns, column+" = ?")
	a.args = append(a.args, value)
}

// update renders "UPDATE table SET ... WHERE id = ?" with id as the last argument.
// With nothing to set it rewrites id to itself so a missing row still reports zero rows affected.
func (a *assignments) update(table, id string) (string, []any) {
	set := "id = id"
	if len(a.columns) > 0 {
		set = strings.Join(a.columns, ", ")
	}
	return "UPDATE " + table + " SET " + set + " WHERE id = ?", append(a.args, id)
}
