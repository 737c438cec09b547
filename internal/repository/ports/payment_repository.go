package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, userID uuid.UUID, name, description string, amount float64, category domain.PaymentCategory, deadline time.Time) (*domain.Payment, error)

	// ListByOwner returns the owner's payments sorted ascending by deadline.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Payment, error)

	// UpdateStatusOwned and DeleteOwned are owner-scoped: a payment that exists
	// but belongs to someone else yields sql.ErrNoRows, same as a missing one.
	UpdateStatusOwned(ctx context.Context, id, userID uuid.UUID, status domain.PaymentStatus) (*domain.Payment, error)
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error

	// MarkOverdueBefore transitions every pending payment whose deadline is
	// strictly before cutoff to overdue, returning the number touched.
	MarkOverdueBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ListPendingDeadlineBetween selects pending payments with from <= deadline < to.
	ListPendingDeadlineBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error)

	// ListOverdueDeadlineBefore selects overdue payments with deadline < cutoff.
	ListOverdueDeadlineBefore(ctx context.Context, cutoff time.Time) ([]domain.Payment, error)
}
