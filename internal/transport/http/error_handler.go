package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/payremind/payment-reminder-backend/internal/apperr"
	"github.com/payremind/payment-reminder-backend/internal/util"
)

// NewErrorHandler renders every request failure as the uniform envelope.
// Stack traces are attached only in development mode.
func NewErrorHandler(devMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal Server Error"
		var errs []string

		var appErr *apperr.Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
			errs = appErr.Errs
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}

		body := util.ErrorResponse{
			Success:    false,
			StatusCode: status,
			Message:    message,
			Errors:     errs,
		}
		if body.Errors == nil {
			body.Errors = []string{}
		}
		if devMode && status >= http.StatusInternalServerError {
			body.Stack = err.Error() + "\n" + string(debug.Stack())
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
