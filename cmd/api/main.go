package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/payremind/payment-reminder-backend/internal/config"
	"github.com/payremind/payment-reminder-backend/internal/repository/postgres"
	"github.com/payremind/payment-reminder-backend/internal/scheduler"
	"github.com/payremind/payment-reminder-backend/internal/service"
	transporthttp "github.com/payremind/payment-reminder-backend/internal/transport/http"
	"github.com/payremind/payment-reminder-backend/internal/transport/mail"
	"github.com/payremind/payment-reminder-backend/internal/util"
)

func main() {
	cfg := config.Load()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.Migrate(migrateCtx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)

	otpSender, reminderSender, err := buildMailers(cfg)
	if err != nil {
		log.Fatalf("failed to configure mail delivery: %v", err)
	}

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, otpSender, jwtManager, cfg.OTPTTL, cfg.OTPLength)
	paymentService := service.NewPaymentService(paymentRepo)

	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		log.Printf("unknown timezone %q, using UTC: %v", cfg.ReminderTimezone, err)
		loc = time.UTC
	}
	reminderService := service.NewReminderService(paymentRepo, userRepo, reminderSender, loc)

	schedCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	daily := scheduler.NewDaily(cfg.ReminderHour, cfg.ReminderMinute, loc, reminderService.Run)
	daily.Start(schedCtx)

	e := transporthttp.NewRouter(cfg.AllowOrigins, cfg.AppEnv == "development")
	transporthttp.RegisterAuth(e, authService)
	transporthttp.RegisterPayments(e, authService, paymentService, loc)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// buildMailers selects the mail backend. The log-only mailer writes OTPs in
// plaintext, so running without SMTP is only allowed in development.
func buildMailers(cfg config.Config) (service.OTPSender, service.ReminderSender, error) {
	if cfg.SMTPHost != "" {
		mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		return mailer, mailer, nil
	}
	if cfg.AppEnv != "development" {
		return nil, nil, fmt.Errorf("SMTP_HOST is required when APP_ENV=%q", cfg.AppEnv)
	}
	log.Println("SMTP not configured, falling back to log-only mailer")
	logMailer := mail.NewLogMailer()
	return logMailer, logMailer, nil
}
