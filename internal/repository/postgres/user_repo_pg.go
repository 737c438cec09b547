package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, name, email string, otpHash, otpSalt []byte, otpExpiresAt time.Time) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (name, email, otp_hash, otp_salt, otp_expires_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, email, is_verified, otp_hash, otp_salt, otp_expires_at, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, name, email, otpHash, otpSalt, otpExpiresAt)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, is_verified, otp_hash, otp_salt, otp_expires_at, created_at, updated_at
        FROM user_account
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, name, email, is_verified, otp_hash, otp_salt, otp_expires_at, created_at, updated_at
        FROM user_account
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetOTP(ctx context.Context, id uuid.UUID, otpHash, otpSalt []byte, otpExpiresAt time.Time) error {
	const query = `
        UPDATE user_account
        SET otp_hash = $2,
            otp_salt = $3,
            otp_expires_at = $4,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, otpHash, otpSalt, otpExpiresAt)
	return err
}

func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
        UPDATE user_account
        SET is_verified = TRUE,
            otp_hash = NULL,
            otp_salt = NULL,
            otp_expires_at = NULL,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *UserRepository) ClearOTP(ctx context.Context, id uuid.UUID) error {
	const query = `
        UPDATE user_account
        SET otp_hash = NULL,
            otp_salt = NULL,
            otp_expires_at = NULL,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
