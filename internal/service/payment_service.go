package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/payremind/payment-reminder-backend/internal/domain"
	"github.com/payremind/payment-reminder-backend/internal/repository/ports"
)

type PaymentService struct {
	payments ports.PaymentRepository
}

func NewPaymentService(paymentRepo ports.PaymentRepository) *PaymentService {
	return &PaymentService{payments: paymentRepo}
}

type CreatePaymentInput struct {
	PaymentName string
	Description string
	Amount      float64
	Category    domain.PaymentCategory
	Deadline    time.Time
}

func (s *PaymentService) Create(ctx context.Context, ownerID uuid.UUID, input CreatePaymentInput) (*domain.Payment, error) {
	input.PaymentName = strings.TrimSpace(input.PaymentName)
	if input.PaymentName == "" || input.Deadline.IsZero() || input.Amount < 0 {
		return nil, ErrInvalidPayment
	}
	if input.Category == "" {
		input.Category = domain.PaymentCategoryOther
	}
	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return s.payments.Create(ctx, ownerID, input.PaymentName, strings.TrimSpace(input.Description), input.Amount, input.Category, input.Deadline)
}

func (s *PaymentService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Payment, error) {
	return s.payments.ListByOwner(ctx, ownerID)
}

// UpdateStatus sets any valid status on an owned payment. Transitions are
// deliberately unconstrained beyond enum membership; only the scheduler's
// overdue sweep is automatic.
func (s *PaymentService) UpdateStatus(ctx context.Context, ownerID, paymentID uuid.UUID, status domain.PaymentStatus) (*domain.Payment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	payment, err := s.payments.UpdateStatusOwned(ctx, paymentID, ownerID, status)
	if err != nil {
		if isNotFound(err) {
			// Not-owned and nonexistent are indistinguishable to the caller.
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, ownerID, paymentID uuid.UUID) error {
	if err := s.payments.DeleteOwned(ctx, paymentID, ownerID); err != nil {
		if isNotFound(err) {
			return ErrPaymentNotFound
		}
		return err
	}
	return nil
}
