package infra

import (
	"errors"
	"log/slog"

	"storefront-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure and returns a RepositoryError whose kind is derived from the
// PostgreSQL error code when there is one.
func WrapRepoErr(slogger *slog.Logger, msg string, err error) error {
	kind := classify(err)
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logArgs = append(logArgs, slog.String("pg_code", pgErr.Code))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Mark(errs.Wrap(err, msg), errs.ErrDatabaseOperationFailed)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case "23505":
		return KindDuplicateKey
	case "23503":
		return KindForeignKeyViolated
	case "23502", "23514", "22001", "22003", "22P02":
		return KindInvalidData
	case "42P01":
		return KindSchemaMissing
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindInvalidData        RepositoryErrorKind = "INVALID_DATA"
	KindSchemaMissing      RepositoryErrorKind = "SCHEMA_MISSING"
)
