package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepo(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, user_id, payment_name, description, amount, category, deadline, status, created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, userID uuid.UUID, name, description string, amount float64, category domain.PaymentCategory, deadline time.Time) (*domain.Payment, error) {
	const query = `
        INSERT INTO payment (user_id, payment_name, description, amount, category, deadline)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + paymentColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, userID, name, description, amount, category, deadline)
	var payment domain.Payment
	if err := row.StructScan(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error) {
	const query = `
        SELECT ` + paymentColumns + `
        FROM payment
        WHERE user_id = $1
        ORDER BY deadline ASC
    `
	payments := []domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatusOwned(ctx context.Context, id, userID uuid.UUID, status domain.PaymentStatus) (*domain.Payment, error) {
	const query = `
        UPDATE payment
        SET status = $3,
            updated_at = NOW()
        WHERE id = $1 AND user_id = $2
        RETURNING ` + paymentColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id, userID, status)
	var payment domain.Payment
	if err := row.StructScan(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	const query = `
        DELETE FROM payment
        WHERE id = $1 AND user_id = $2
    `
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PaymentRepository) MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
        UPDATE payment
        SET status = 'overdue',
            updated_at = NOW()
        WHERE status = 'pending' AND deadline < $1
    `
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PaymentRepository) ListPendingDeadlineBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	const query = `
        SELECT ` + paymentColumns + `
        FROM payment
        WHERE status = 'pending' AND deadline >= $1 AND deadline < $2
        ORDER BY deadline ASC
    `
	payments := []domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, from, to); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) ListOverdueDeadlineBefore(ctx context.Context, cutoff time.Time) ([]domain.Payment, error) {
	const query = `
        SELECT ` + paymentColumns + `
        FROM payment
        WHERE status = 'overdue' AND deadline < $1
        ORDER BY deadline ASC
    `
	payments := []domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, cutoff); err != nil {
		return nil, err
	}
	return payments, nil
}
