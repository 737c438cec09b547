package util

import "github.com/labstack/echo/v4"

// Response is the uniform success envelope every handler returns.
type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// ErrorResponse is the uniform failure envelope rendered by the central
// error handler. Stack is populated only in development mode.
type ErrorResponse struct {
	Success    bool     `json:"success"`
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Stack      string   `json:"stack,omitempty"`
}

func Respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Response{
		Success:    true,
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}
