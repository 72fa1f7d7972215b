package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
	mysqlDuplicateEntry = 1062
	// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
	pgUniqueViolation = "23505"
)

// IsDuplicateKey reports whether err is a unique-constraint violation from
// any of the supported drivers. GORM translates these into
// gorm.ErrDuplicatedKey when TranslateError is enabled; the driver checks
// cover connections opened without it.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return false
}
