package service

import "errors"

// Error strings double as HTTP response bodies, so they keep the
// sentence casing the API has always exposed.
var (
	ErrInvalidEmail    = errors.New("Invalid email format")
	ErrInvalidPassword = errors.New("Invalid password format")
	ErrEmailExists     = errors.New("Email already exists")
	ErrUserNotFound    = errors.New("User not found")
	ErrWrongPassword   = errors.New("Incorrect password")
	ErrRegisterFailed  = errors.New("Failed to register user")
	ErrBookNotFound    = errors.New("Book not found")
	ErrAlreadyBorrowed = errors.New("Book is already borrowed")
	ErrAlreadyReturned = errors.New("Book is already returned")
)
