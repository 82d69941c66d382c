// Package server provides the HTTP REST API for the resume composer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrDocumentNotFound indicates a document was not found or is not
// owned by the requesting user
type ErrDocumentNotFound struct {
	DocumentID uuid.UUID
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.DocumentID)
}

// ErrUnknownTemplate indicates a template id that no builtin provides
type ErrUnknownTemplate struct {
	TemplateID string
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown template: %s", e.TemplateID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrDocumentNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrUnknownTemplate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
