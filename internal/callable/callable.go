// Package callable implements the RPC-style invocation surface: operations
// receive a typed payload plus an optional caller identity, independent of
// how the invocation was transported.
package callable

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tasknest/tasknest-api/internal/authn"
)

// Code is a structured error code in the callable taxonomy.
type Code string

const (
	CodeUnauthenticated Code = "unauthenticated"
	CodeInvalidArgument Code = "invalid-argument"
	CodeNotFound        Code = "not-found"
	CodeInternal        Code = "internal"
)

// Error is the structured failure shape of the callable surface.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Unauthenticated(msg string) *Error { return &Error{Code: CodeUnauthenticated, Message: msg} }
func InvalidArgument(msg string) *Error { return &Error{Code: CodeInvalidArgument, Message: msg} }
func NotFoundError(msg string) *Error   { return &Error{Code: CodeNotFound, Message: msg} }
func Internal(msg string) *Error        { return &Error{Code: CodeInternal, Message: msg} }

// Request is a callable invocation: raw payload plus the caller identity,
// nil when the caller is unauthenticated.
type Request struct {
	Data json.RawMessage
	Auth *authn.Identity
}

// Handler implements one callable operation.
type Handler func(ctx context.Context, req Request) (interface{}, error)

// Dispatcher routes invocations to registered operations by name.
type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers[name] = h
}

// Invoke runs the named operation. Unknown names fail with not-found.
func (d *Dispatcher) Invoke(ctx context.Context, name string, req Request) (interface{}, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, NotFoundError(fmt.Sprintf("unknown callable %q", name))
	}
	return h(ctx, req)
}
