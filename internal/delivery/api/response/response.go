// Package response writes the JSON envelope every API endpoint answers with:
// {"data": ...} or {"error": {...}}, both with meta.request_id.
package response

import (
	"net/http"

	deliverycontext "crave/internal/delivery/context"
	domainerrors "crave/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
	Meta  Meta      `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. 401 and 403 drop details so auth failures
// never say which check failed.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is BadRequest for bodies and query strings echo could not decode.
func BindingError(c echo.Context, errorCode, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors. Anything else goes back up to the
// echo error handler, which logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return AppError(c, appErr)
}

func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
