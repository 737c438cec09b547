package service

import (
	"context"
	"strings"
	"time"

	"github.com/payremind/payment-reminder-backend/internal/domain"
	"github.com/payremind/payment-reminder-backend/internal/repository/ports"
	"github.com/payremind/payment-reminder-backend/internal/util"
)

// OTPSender delivers plaintext passcodes to the user's mailbox. The plaintext
// exists only for the duration of the send; the store only ever sees the hash.
type OTPSender interface {
	SendRegistrationOTP(ctx context.Context, email, name, otp string) error
	SendLoginOTP(ctx context.Context, email, name, otp string) error
}

// UserProjection is the redacted view of a user returned by login. OTP
// material never leaves the store.
type UserProjection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

type LoginResult struct {
	User        UserProjection `json:"user"`
	AccessToken string         `json:"accessToken"`
}

type AuthService struct {
	users     ports.UserRepository
	mailer    OTPSender
	jwt       *util.JWTManager
	otpTTL    time.Duration
	otpLength int
}

func NewAuthService(users ports.UserRepository, mailer OTPSender, jwt *util.JWTManager, otpTTL time.Duration, otpLength int) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    mailer,
		jwt:       jwt,
		otpTTL:    otpTTL,
		otpLength: otpLength,
	}
}

// issueOTP is the single generation/hashing path shared by registration and
// login so the expiry and hashing policy cannot drift between them.
func (s *AuthService) issueOTP() (plaintext string, hash, salt []byte, expiresAt time.Time, err error) {
	plaintext, err = util.GenerateNumericOTP(s.otpLength)
	if err != nil {
		return "", nil, nil, time.Time{}, err
	}
	hash, salt, err = util.DeriveOTP(plaintext)
	if err != nil {
		return "", nil, nil, time.Time{}, err
	}
	return plaintext, hash, salt, time.Now().Add(s.otpTTL), nil
}

// checkOTP validates an outstanding passcode against the stored hash. A user
// with no passcode on record is treated the same as an expired one.
func (s *AuthService) checkOTP(user *domain.User, otp string) error {
	if !user.HasPendingOTP() || time.Now().After(*user.OTPExpiresAt) {
		return ErrOTPExpired
	}
	if !util.VerifyOTP(otp, user.OTPSalt, user.OTPHash) {
		return ErrOTPInvalid
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified user and mails a fresh passcode.
func (s *AuthService) Register(ctx context.Context, name, email string) error {
	email = normalizeEmail(email)

	otp, hash, salt, expiresAt, err := s.issueOTP()
	if err != nil {
		return err
	}

	user, err := s.users.Create(ctx, strings.TrimSpace(name), email, hash, salt, expiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyUsed
		}
		return err
	}

	if err := s.mailer.SendRegistrationOTP(ctx, user.Email, user.Name, otp); err != nil {
		return ErrMailDispatch
	}
	return nil
}

// VerifyRegistration consumes the registration passcode and marks the user
// verified. Verified status is monotonic; OTP fields are cleared in the same
// statement.
func (s *AuthService) VerifyRegistration(ctx context.Context, email, otp string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.checkOTP(user, otp); err != nil {
		return err
	}

	return s.users.MarkVerified(ctx, user.ID)
}

// RequestLoginOTP issues a fresh passcode for a verified user. Any passcode
// issued earlier is superseded by the new hash.
func (s *AuthService) RequestLoginOTP(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.IsVerified {
		return ErrUserNotVerified
	}

	otp, hash, salt, expiresAt, err := s.issueOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, user.ID, hash, salt, expiresAt); err != nil {
		return err
	}

	if err := s.mailer.SendLoginOTP(ctx, user.Email, user.Name, otp); err != nil {
		return ErrMailDispatch
	}
	return nil
}

// Login consumes the login passcode and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, otp string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	if err := s.checkOTP(user, otp); err != nil {
		return nil, err
	}

	if err := s.users.ClearOTP(ctx, user.ID); err != nil {
		return nil, err
	}

	token, _, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User: UserProjection{
			ID:         user.ID.String(),
			Name:       user.Name,
			Email:      user.Email,
			IsVerified: user.IsVerified,
		},
		AccessToken: token,
	}, nil
}

// Authenticate resolves a bearer token to its user. Used by the auth
// middleware on every protected request.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
