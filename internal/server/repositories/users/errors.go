package users

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ConstraintEmail    = "users_email_key"
	ConstraintUsername = "users_username_key"

	uniqueViolation = "23505"
)

// ErrEmailTaken and ErrUsernameTaken wrap common.ErrorAlreadyExists so callers
// can tell which unique constraint fired.
var (
	ErrEmailTaken    = fmt.Errorf("email %w", common.ErrorAlreadyExists)
	ErrUsernameTaken = fmt.Errorf("username %w", common.ErrorAlreadyExists)
)

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case ConstraintEmail:
		return ErrEmailTaken
	case ConstraintUsername:
		return ErrUsernameTaken
	}
	return common.ErrorAlreadyExists
}
