package service

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadyUsed = errors.New("user with this email already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotVerified  = errors.New("user not verified")
	ErrOTPExpired       = errors.New("otp has expired")
	ErrOTPInvalid       = errors.New("invalid otp")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrMailDispatch     = errors.New("failed to send email")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPayment  = errors.New("payment name, amount, and deadline are required")
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
