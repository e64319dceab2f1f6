// Package postgres implements the repositories against PostgreSQL via
// pgx. Constructors accept the DB interface so tests can substitute a
// pgxmock pool.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	autherror "github.com/MannyGDy/Captive-Portal/internal/errors"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// translateConstraint maps schema constraint violations to the domain
// errors callers branch on. Uniqueness lives in the schema, so the
// violation error is the authoritative duplicate signal; there is no
// check-then-insert race to mind.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "user_registrations_email_key":
			return autherror.ErrEmailAlreadyRegistered
		case "user_registrations_phone_number_key":
			return autherror.ErrPhoneAlreadyRegistered
		case "admin_users_username_key":
			return autherror.ErrUsernameTaken
		case "admin_users_email_key":
			return autherror.ErrEmailAlreadyRegistered
		}
	case pgCheckViolation:
		if pgErr.ConstraintName == "valid_nigerian_phone" {
			return autherror.ErrInvalidPhoneFormat
		}
	}

	return err
}
