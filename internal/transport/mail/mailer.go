package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/payremind/payment-reminder-backend/internal/domain"
)

// Mailer sends transactional mail over SMTP. It implements both the OTP and
// reminder sender ports consumed by the services.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(host, port, username, password, from string) *Mailer {
	return &Mailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
	}
}

func (m *Mailer) SendRegistrationOTP(ctx context.Context, email, name, otp string) error {
	subject := "OTP for Registration"
	body := fmt.Sprintf("Hello %s, your OTP for payment reminder system is: <b>%s</b>. It is valid for 10 minutes.", name, otp)
	return m.send(ctx, email, subject, body)
}

func (m *Mailer) SendLoginOTP(ctx context.Context, email, name, otp string) error {
	subject := "OTP for Login - Payment Reminder System"
	body := fmt.Sprintf("Hello %s, your OTP for login is: <b>%s</b>. It is valid for 10 minutes.", name, otp)
	return m.send(ctx, email, subject, body)
}

func (m *Mailer) SendUpcomingReminder(ctx context.Context, email, name string, payment *domain.Payment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Payment for %s", payment.PaymentName)
	body := fmt.Sprintf(
		"Hello %s, this is a friendly reminder that your payment for <b>%s</b> of amount <b>$%.2f</b> is due in two days on %s.",
		name, payment.PaymentName, payment.Amount, payment.Deadline.Format("Mon Jan 2 2006"),
	)
	return m.send(ctx, email, subject, body)
}

func (m *Mailer) SendDueTodayReminder(ctx context.Context, email, name string, payment *domain.Payment) error {
	subject := fmt.Sprintf("Due Today: Payment for %s", payment.PaymentName)
	body := fmt.Sprintf(
		"Hello %s, your payment for <b>%s</b> of amount <b>$%.2f</b> is due <b>today</b>, %s. Please pay before the day ends to avoid it going overdue.",
		name, payment.PaymentName, payment.Amount, payment.Deadline.Format("Mon Jan 2 2006"),
	)
	return m.send(ctx, email, subject, body)
}

func (m *Mailer) SendOverdueNotice(ctx context.Context, email, name string, payment *domain.Payment) error {
	subject := fmt.Sprintf("Overdue: Payment for %s", payment.PaymentName)
	body := fmt.Sprintf(
		"Hello %s, your payment for <b>%s</b> of amount <b>$%.2f</b> was due on %s and is now <b>overdue</b>. Please settle it as soon as possible.",
		name, payment.PaymentName, payment.Amount, payment.Deadline.Format("Mon Jan 2 2006"),
	)
	return m.send(ctx, email, subject, body)
}

// send attempts delivery once. The SMTP exchange runs in its own goroutine so
// the caller's context deadline bounds the wait; an expired deadline counts
// as a delivery failure.
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	message.WriteString(htmlBody)
	message.WriteString("\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.from, []string{to}, []byte(message.String()))
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
