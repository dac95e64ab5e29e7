// Package apperr defines the error taxonomy shared by every handler and the
// mapping from that taxonomy to HTTP responses.
package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Kind classifies an error for the HTTP boundary
type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

// Status returns the HTTP status for the kind
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Error is a classified error with a message that is safe to show to callers
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors by kind and message so wrapped copies compare equal
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Validation returns a user-correctable input error
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound returns an unknown-entity error
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict returns a state conflict error
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Storage wraps an infrastructure failure
func Storage(err error, msg string) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: errors.WithStack(err)}
}

// KindOf returns the kind of err; unclassified errors are storage errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// MessageOf returns the caller-safe message for err
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindStorage && appErr.Message == "" {
			return "Internal server error"
		}
		return appErr.Message
	}
	return "Internal server error"
}

// Respond writes err as a JSON error body and aborts the request.
// Storage errors are logged with their cause; the caller only sees the message.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	kind := KindOf(err)
	if kind == KindStorage {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(kind.Status(), gin.H{"error": MessageOf(err)})
}
