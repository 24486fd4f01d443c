// Package errors defines the failure kinds the application produces and
// maps each to an HTTP status code. Handlers never inspect error text;
// they ask for the status code and forward the message.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCoder is implemented by every error kind in this package.
type StatusCoder interface {
	error
	StatusCode() int
}

// Is reports whether err (or anything it wraps) is of kind T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// StatusCode extracts the HTTP status carried by err, defaulting to 500
// for errors that do not declare one.
func StatusCode(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// IncompletePayload means a request payload is missing a required
// property. Checked before types, so a payload that is both incomplete
// and mistyped reports the missing property first.
type IncompletePayload struct {
	Entity string
	Field  string
}

func (e *IncompletePayload) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot create %s, payload is missing required properties", e.Entity)
	}
	return fmt.Sprintf("cannot create %s, missing required property %q", e.Entity, e.Field)
}

func (e *IncompletePayload) StatusCode() int { return http.StatusBadRequest }

// InvalidType means a payload property is present but has the wrong
// data type.
type InvalidType struct {
	Entity string
	Field  string
	Want   string
}

func (e *InvalidType) Error() string {
	return fmt.Sprintf("cannot create %s, property %q must be a %s", e.Entity, e.Field, e.Want)
}

func (e *InvalidType) StatusCode() int { return http.StatusBadRequest }

// BadRequest covers malformed requests that fail before entity
// validation, e.g. a body that is not valid JSON.
type BadRequest struct {
	Message string
}

func (e *BadRequest) Error() string { return e.Message }

func (e *BadRequest) StatusCode() int { return http.StatusBadRequest }

type NotFound struct {
	Resource string
	Id       string
}

func (e *NotFound) Error() string {
	if e.Id == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Id)
}

func (e *NotFound) StatusCode() int { return http.StatusNotFound }

type Forbidden struct {
	Message string
}

func (e *Forbidden) Error() string { return e.Message }

func (e *Forbidden) StatusCode() int { return http.StatusForbidden }

type Unauthenticated struct {
	Message string
}

func (e *Unauthenticated) Error() string { return e.Message }

func (e *Unauthenticated) StatusCode() int { return http.StatusUnauthorized }

type Conflict struct {
	Message string
}

func (e *Conflict) Error() string { return e.Message }

func (e *Conflict) StatusCode() int { return http.StatusConflict }
