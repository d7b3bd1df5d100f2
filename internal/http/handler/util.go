package handler

import (
	"errors"
	"net/http"

	"github.com/cliffordwilliam/ifabula-library/internal/service"
)

// statusFor maps service errors onto HTTP status codes. Anything
// unrecognized is a store or internal failure and surfaces as a 500
// with the error text passed through.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrAlreadyBorrowed),
		errors.Is(err, service.ErrAlreadyReturned):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
