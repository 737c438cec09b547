package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, name, email string, otpHash, otpSalt []byte, otpExpiresAt time.Time) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetOTP(ctx context.Context, id uuid.UUID, otpHash, otpSalt []byte, otpExpiresAt time.Time) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	ClearOTP(ctx context.Context, id uuid.UUID) error
}
