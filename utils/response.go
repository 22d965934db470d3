package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

// Error kinds raised by the service layer. The HTTP adapter owns the mapping
// to status codes; services never deal in statuses.
const (
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindValidation      = "validation"
	KindInvalidArgument = "invalid_argument"
	KindUnauthenticated = "unauthenticated"
	KindForbidden       = "forbidden"
	KindInvalidState    = "invalid_state"
	KindInternal        = "internal"
)

type AppError struct {
	Kind    string
	Message string
	Fields  map[string]string
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NotFound(resource, field, value string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found with %s: %s", resource, field, value)}
}

func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// ValidationFailed wraps a validation result; ozzo field errors become the
// field -> message map of the response body.
func ValidationFailed(err error) *AppError {
	fields := map[string]string{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
	}
	return &AppError{Kind: KindValidation, Message: "Validation failed", Fields: fields, cause: err}
}

func InvalidArgument(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func InvalidState(message string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: message}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "An unexpected error occurred", cause: err}
}

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Details          string            `json:"details"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

func statusFor(kind string) (int, string) {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound, "Resource Not Found"
	case KindConflict:
		return http.StatusConflict, "Resource Already Exists"
	case KindValidation:
		return http.StatusBadRequest, "Validation Error"
	case KindInvalidArgument:
		return http.StatusBadRequest, "Invalid Request"
	case KindUnauthenticated:
		return http.StatusUnauthorized, "Unauthorized"
	case KindForbidden:
		return http.StatusForbidden, "Access Denied"
	case KindInvalidState:
		return http.StatusBadRequest, "Invalid Data"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

/*
* Map a service failure onto the wire. Internal errors are logged with the
* underlying cause; the client only sees a generic message. A request that
* overran its deadline maps to 504.
 */
func WriteError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		writeBody(c, http.StatusGatewayTimeout, "Gateway Timeout", "The request exceeded its deadline", nil)
		return
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	status, name := statusFor(appErr.Kind)
	if appErr.Kind == KindInternal {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.cause)
	}
	writeBody(c, status, name, appErr.Message, appErr.Fields)
}

func writeBody(c *gin.Context, status int, name, message string, fields map[string]string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp:        time.Now(),
		Status:           status,
		Error:            name,
		Message:          message,
		Details:          "uri=" + c.Request.URL.Path,
		ValidationErrors: fields,
	})
}
