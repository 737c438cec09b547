package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/payremind/payment-reminder-backend/internal/apperr"
	"github.com/payremind/payment-reminder-backend/internal/service"
	"github.com/payremind/payment-reminder-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/auth")
	group.POST("/register", handler.register)
	group.POST("/verify-otp", handler.verifyOTP)
	group.POST("/request-login-otp", handler.requestLoginOTP)
	group.POST("/login", handler.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return apperr.BadRequest("Name and email are required")
	}

	if err := h.auth.Register(c.Request().Context(), req.Name, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyUsed):
			return apperr.Conflict("User with this email already exists")
		case errors.Is(err, service.ErrMailDispatch):
			return apperr.Internal("Failed to send email. Please check your email configuration.")
		default:
			return err
		}
	}

	return util.Respond(c, http.StatusCreated, echo.Map{}, "User created successfully. OTP sent to email.")
}

func (h *AuthHandler) verifyOTP(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.OTP) == "" {
		return apperr.BadRequest("Email and OTP are required")
	}

	if err := h.auth.VerifyRegistration(c.Request().Context(), req.Email, req.OTP); err != nil {
		if appErr := mapOTPError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return util.Respond(c, http.StatusOK, echo.Map{}, "User verified successfully!")
}

func (h *AuthHandler) requestLoginOTP(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperr.BadRequest("Email is required")
	}

	if err := h.auth.RequestLoginOTP(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return apperr.NotFound("User not found")
		case errors.Is(err, service.ErrUserNotVerified):
			return apperr.Unauthorized("User not verified. Please verify your email first.")
		case errors.Is(err, service.ErrMailDispatch):
			return apperr.Internal("Failed to send email. Please check your email configuration.")
		default:
			return err
		}
	}

	return util.Respond(c, http.StatusOK, echo.Map{}, "OTP sent to email successfully.")
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.OTP) == "" {
		return apperr.BadRequest("Email and OTP are required")
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, service.ErrUserNotVerified) {
			return apperr.Unauthorized("User not verified. Please verify your email first.")
		}
		if appErr := mapOTPError(err); appErr != nil {
			return appErr
		}
		return err
	}

	return util.Respond(c, http.StatusOK, result, "User logged in successfully.")
}

// mapOTPError translates the shared OTP-check failures; it returns nil for
// errors outside the OTP taxonomy so the caller can fall through.
func mapOTPError(err error) *apperr.Error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return apperr.NotFound("User not found")
	case errors.Is(err, service.ErrOTPExpired):
		return apperr.BadRequest("OTP has expired. Please request a new OTP.")
	case errors.Is(err, service.ErrOTPInvalid):
		return apperr.Unauthorized("Invalid OTP")
	}
	return nil
}
