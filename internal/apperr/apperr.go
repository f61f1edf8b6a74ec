package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sentinel kinds for the closed error set handlers translate to HTTP statuses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Error carries a user-facing message tagged with one of the sentinel kinds.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// Invalid returns a client-input error (HTTP 400).
func Invalid(msg string) error { return &Error{kind: ErrInvalidInput, msg: msg} }

// NotFound returns a missing-resource error (HTTP 404).
func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

// Status maps an error to its HTTP status. Anything outside the closed set is
// an upstream failure and maps to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the uniform failure shape. The message is passed through
// unmodified; upstream errors surface verbatim.
func Respond(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{"error": err.Error()})
}
