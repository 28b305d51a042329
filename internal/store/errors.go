package store

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	ErrNotFound      = stderrors.New("record not found")
	ErrUsernameTaken = stderrors.New("username already exists")
	ErrEmailTaken    = stderrors.New("email already exists")
	ErrOwnerNotFound = stderrors.New("owner does not exist")
)

func isNoRows(err error) bool {
	return stderrors.Is(err, pgx.ErrNoRows)
}

// pgError 回傳違反的 SQLSTATE 與 constraint 名稱
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}
