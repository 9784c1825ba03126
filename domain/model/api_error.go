package model

import (
	"errors"
	"net/http"
)

// ApiError carries an HTTP status code alongside the message so handlers can
// map failures onto the response envelope without matching error strings.
type ApiError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *ApiError) Error() string { return e.Message }

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

func NewBadRequestError(message string) *ApiError {
	return NewApiError(http.StatusBadRequest, message)
}

// NewValidationError covers missing/empty required fields and malformed
// identifiers.
func NewValidationError(message string) *ApiError {
	return NewApiError(http.StatusUnprocessableEntity, message)
}

func NewConflictError(message string) *ApiError {
	return NewApiError(http.StatusConflict, message)
}

func NewNotFoundError(message string) *ApiError {
	return NewApiError(http.StatusNotFound, message)
}

func NewUnauthorizedError(message string) *ApiError {
	return NewApiError(http.StatusUnauthorized, message)
}

// NewForbiddenError is used when the caller is authenticated but is not the
// owner of the targeted entity.
func NewForbiddenError(message string) *ApiError {
	return NewApiError(http.StatusForbidden, message)
}

func NewInternalError(message string) *ApiError {
	return NewApiError(http.StatusInternalServerError, message)
}

// AsApiError normalizes any error into an ApiError. Unknown errors surface as
// a generic internal failure so store internals never leak to clients.
func AsApiError(err error) *ApiError {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("Something went wrong at our end")
}
