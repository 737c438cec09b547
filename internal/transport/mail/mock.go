package mail

import (
	"context"
	"log"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

// LogMailer logs instead of sending. Used in development when SMTP is not
// configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendRegistrationOTP(ctx context.Context, email, name, otp string) error {
	log.Printf("[mail] registration OTP for %s <%s>: %s", name, email, otp)
	return nil
}

func (m *LogMailer) SendLoginOTP(ctx context.Context, email, name, otp string) error {
	log.Printf("[mail] login OTP for %s <%s>: %s", name, email, otp)
	return nil
}

func (m *LogMailer) SendUpcomingReminder(ctx context.Context, email, name string, payment *domain.Payment) error {
	log.Printf("[mail] upcoming reminder to %s for %s", email, payment.PaymentName)
	return nil
}

func (m *LogMailer) SendDueTodayReminder(ctx context.Context, email, name string, payment *domain.Payment) error {
	log.Printf("[mail] due-today reminder to %s for %s", email, payment.PaymentName)
	return nil
}

func (m *LogMailer) SendOverdueNotice(ctx context.Context, email, name string, payment *domain.Payment) error {
	log.Printf("[mail] overdue notice to %s for %s", email, payment.PaymentName)
	return nil
}
