// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "foodcritic/internal/delivery/context"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"

	"github.com/labstack/echo/v4"
)

const contentTypePNG = "image/png"

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// NoContent answers a successful request that has no body, such as a delete
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// PNG writes an image/png body
func PNG(c echo.Context, image []byte) error {
	return c.Blob(http.StatusOK, contentTypePNG, image)
}

// Error returns an error response. Reasons are dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, reasons map[string]string) error {
	if statusCode >= http.StatusInternalServerError || len(reasons) == 0 {
		reasons = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
		Reasons: reasons,
		Meta:    meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithReasons returns a 400 error naming the offending fields
func BadRequestWithReasons(c echo.Context, errorCode string, message string, reasons map[string]string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, reasons)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors directly and hands anything else back
// to the central HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), Reasons(err))
}

// Reasons returns the field level detail carried by err, if any.
func Reasons(err error) map[string]string {
	var carrier domainerrors.ReasonCarrier
	if errors.As(err, &carrier) {
		return carrier.Reasons()
	}

	return nil
}
