package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/payremind/payment-reminder-backend/internal/domain"
	"github.com/payremind/payment-reminder-backend/internal/repository/ports"
)

// ReminderSender delivers one reminder notice per call. A failed send is the
// caller's problem to isolate; the transport attempts delivery once.
type ReminderSender interface {
	SendUpcomingReminder(ctx context.Context, email, name string, payment *domain.Payment) error
	SendDueTodayReminder(ctx context.Context, email, name string, payment *domain.Payment) error
	SendOverdueNotice(ctx context.Context, email, name string, payment *domain.Payment) error
}

const defaultSendTimeout = 30 * time.Second

// ReminderService runs the daily reminder pass: an overdue sweep followed by
// three independent date-bucket queries, each mailed sequentially.
type ReminderService struct {
	payments ports.PaymentRepository
	users    ports.UserRepository
	mailer   ReminderSender
	loc      *time.Location

	// now is injectable so tests can pin the calendar day.
	now         func() time.Time
	sendTimeout time.Duration
}

func NewReminderService(paymentRepo ports.PaymentRepository, userRepo ports.UserRepository, mailer ReminderSender, loc *time.Location) *ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReminderService{
		payments:    paymentRepo,
		users:       userRepo,
		mailer:      mailer,
		loc:         loc,
		now:         time.Now,
		sendTimeout: defaultSendTimeout,
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Run executes one reminder pass. The sweep must complete before any bucket
// query so a payment that went overdue today gets an overdue notice, not a
// due-today one. A failed bucket query aborts the rest of the run; the next
// scheduled trigger retries from scratch.
func (s *ReminderService) Run(ctx context.Context) error {
	today := startOfDay(s.now(), s.loc)

	swept, err := s.payments.MarkOverdueBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("overdue sweep: %w", err)
	}
	if swept > 0 {
		log.Printf("reminder run: swept %d payments to overdue", swept)
	}

	upcoming, err := s.payments.ListPendingDeadlineBetween(ctx, today.AddDate(0, 0, 2), today.AddDate(0, 0, 3))
	if err != nil {
		return fmt.Errorf("advance-notice bucket: %w", err)
	}
	s.notifyBucket(ctx, upcoming, s.mailer.SendUpcomingReminder)

	dueToday, err := s.payments.ListPendingDeadlineBetween(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("due-today bucket: %w", err)
	}
	s.notifyBucket(ctx, dueToday, s.mailer.SendDueTodayReminder)

	overdue, err := s.payments.ListOverdueDeadlineBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("overdue bucket: %w", err)
	}
	s.notifyBucket(ctx, overdue, s.mailer.SendOverdueNotice)

	return nil
}

type sendFunc func(ctx context.Context, email, name string, payment *domain.Payment) error

// notifyBucket walks one bucket sequentially. Every per-payment failure is
// logged and skipped so a single bad record or dead mailbox cannot starve
// the rest of the bucket.
func (s *ReminderService) notifyBucket(ctx context.Context, payments []domain.Payment, send sendFunc) {
	for i := range payments {
		payment := &payments[i]

		user, err := s.users.FindByID(ctx, payment.UserID)
		if err != nil {
			log.Printf("reminder run: owner lookup failed for payment %s: %v", payment.ID, err)
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		err = send(sendCtx, user.Email, user.Name, payment)
		cancel()
		if err != nil {
			log.Printf("reminder run: send failed for payment %s to %s: %v", payment.ID, user.Email, err)
		}
	}
}
