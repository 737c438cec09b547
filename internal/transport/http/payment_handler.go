package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/payremind/payment-reminder-backend/internal/apperr"
	"github.com/payremind/payment-reminder-backend/internal/domain"
	"github.com/payremind/payment-reminder-backend/internal/service"
	"github.com/payremind/payment-reminder-backend/internal/util"
)

type PaymentHandler struct {
	payments *service.PaymentService
	loc      *time.Location
}

// RegisterPayments mounts the payment routes. loc is the reminder timezone:
// date-only deadlines are anchored to midnight there so the scheduler's
// start-of-day cutoffs fall on the same calendar day the user meant.
func RegisterPayments(e *echo.Echo, auth *service.AuthService, payments *service.PaymentService, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	handler := &PaymentHandler{payments: payments, loc: loc}

	group := e.Group("/api/payments", RequireAuth(auth))
	group.POST("", handler.createPayment)
	group.GET("", handler.listPayments)
	group.PATCH("/:id/status", handler.updateStatus)
	group.DELETE("/:id", handler.deletePayment)
}

func (h *PaymentHandler) createPayment(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return apperr.Unauthorized("authentication required")
	}

	var req struct {
		PaymentName string   `json:"paymentName"`
		Description string   `json:"description"`
		Amount      *float64 `json:"amount"`
		Category    string   `json:"category"`
		Deadline    string   `json:"deadline"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if strings.TrimSpace(req.PaymentName) == "" || req.Amount == nil || strings.TrimSpace(req.Deadline) == "" {
		return apperr.BadRequest("Payment name, amount, and deadline are required fields.")
	}

	deadline, err := parseDeadline(req.Deadline, h.loc)
	if err != nil {
		return apperr.BadRequest("deadline must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}

	payment, err := h.payments.Create(c.Request().Context(), user.ID, service.CreatePaymentInput{
		PaymentName: req.PaymentName,
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    domain.PaymentCategory(strings.TrimSpace(req.Category)),
		Deadline:    deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPayment):
			return apperr.BadRequest("Payment name, amount, and deadline are required fields.")
		case errors.Is(err, service.ErrInvalidCategory):
			return apperr.BadRequest("Invalid category provided.")
		default:
			return err
		}
	}

	return util.Respond(c, http.StatusCreated, payment, "Payment created successfully.")
}

func (h *PaymentHandler) listPayments(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return apperr.Unauthorized("authentication required")
	}

	payments, err := h.payments.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return util.Respond(c, http.StatusOK, payments, "Payments fetched successfully.")
}

func (h *PaymentHandler) updateStatus(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return apperr.Unauthorized("authentication required")
	}

	paymentID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return apperr.NotFound("Payment not found or you are not authorized to update this payment.")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	payment, err := h.payments.UpdateStatus(c.Request().Context(), user.ID, paymentID, domain.PaymentStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return apperr.BadRequest("Invalid status provided.")
		case errors.Is(err, service.ErrPaymentNotFound):
			return apperr.NotFound("Payment not found or you are not authorized to update this payment.")
		default:
			return err
		}
	}

	return util.Respond(c, http.StatusOK, payment, "Payment status updated successfully.")
}

func (h *PaymentHandler) deletePayment(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return apperr.Unauthorized("authentication required")
	}

	paymentID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return apperr.NotFound("Payment not found or you are not authorized to delete this payment.")
	}

	if err := h.payments.Delete(c.Request().Context(), user.ID, paymentID); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return apperr.NotFound("Payment not found or you are not authorized to delete this payment.")
		}
		return err
	}

	return util.Respond(c, http.StatusOK, nil, "Payment deleted successfully.")
}

// parseDeadline accepts a date-only deadline or an RFC 3339 timestamp.
// Date-only input carries no clock, so it is pinned to midnight in loc
// rather than UTC.
func parseDeadline(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
