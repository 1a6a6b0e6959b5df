// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	deliverycontext "challengehub/internal/delivery/context"
	domainerrors "challengehub/internal/domain/errors"
	"challengehub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message   string `json:"message"`             // User-friendly error message
	Code      string `json:"code"`                // Machine-readable error code, e.g., "USERNAME_TAKEN"
	RequestID string `json:"requestId,omitempty"` // Request tracking ID
}

// Success writes body as-is. Bodies are flat objects carrying their own message.
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InvalidInput answers a body or parameter that could not be decoded.
func InvalidInput(c echo.Context) error {
	appErr := domainerrors.ErrInvalidInput

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	appErr := domainerrors.ErrInternalError

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// HandleAppError writes client errors. Server errors are returned so the
// central error handler logs the cause and answers with a generic message.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
