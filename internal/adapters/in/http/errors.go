package http

import (
	"errors"
	"net/http"

	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps the errs taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes err as an Error body. Client errors carry the cause,
// server errors only the summary.
func errorResponse(ctx echo.Context, err error, summary string) error {
	code := statusFromError(err)

	message := summary
	if code != http.StatusInternalServerError {
		message = summary + ": " + err.Error()
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
