package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AppEnv           string
	DatabaseURL      string
	JWTSecret        string
	JWTTTL           time.Duration
	AllowOrigins     []string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	OTPTTL           time.Duration
	OTPLength        int
	ReminderHour     int
	ReminderMinute   int
	ReminderTimezone string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	otpLen := 6
	if v, err := strconv.Atoi(getenv("OTP_LENGTH", "6")); err == nil && v > 0 {
		otpLen = v
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		AppEnv:           getenv("APP_ENV", "production"),
		DatabaseURL:      must("DATABASE_URL"),
		JWTSecret:        must("JWT_SECRET"),
		JWTTTL:           duration(getenv("JWT_TTL", "24h"), 24*time.Hour),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		SMTPHost:         getenv("SMTP_HOST", ""),
		SMTPPort:         getenv("SMTP_PORT", ""),
		SMTPUsername:     getenv("SMTP_USERNAME", ""),
		SMTPPassword:     getenv("SMTP_PASSWORD", ""),
		SMTPFrom:         getenv("SMTP_FROM", ""),
		OTPTTL:           duration(getenv("OTP_TTL", "10m"), 10*time.Minute),
		OTPLength:        otpLen,
		ReminderHour:     clockPart(getenv("REMINDER_HOUR", "9"), 9, 23),
		ReminderMinute:   clockPart(getenv("REMINDER_MINUTE", "0"), 0, 59),
		ReminderTimezone: getenv("REMINDER_TIMEZONE", "Asia/Kolkata"),
	}
}

func duration(raw string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}

func clockPart(raw string, fallback, max int) int {
	if v, err := strconv.Atoi(raw); err == nil && v >= 0 && v <= max {
		return v
	}
	return fallback
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
