package infra

import (
	"context"
	"errors"
	"log/slog"

	"store-reservation/internal/pkg/errs"
	"store-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint is set for DUPLICATE_KEY and FOREIGN_KEY_VIOLATED.
	Constraint string
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr classifies err by its postgres error code unless kind is given,
// logs it once and wraps it.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k == KindNotFound {
		level = slog.LevelDebug
	}
	logArgs := []any{slog.String("kind", string(k))}
	if constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	slog.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func classify(err error) (RepositoryErrorKind, string) {
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey, pgErr.ConstraintName
		case pgErrForeignKeyViolation:
			return KindForeignKeyViolated, pgErr.ConstraintName
		}
	}
	return KindDBFailure, ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint named by a DUPLICATE_KEY or
// FOREIGN_KEY_VIOLATED error.
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
