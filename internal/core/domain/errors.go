package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	// ErrTokenInvalid covers every token verification failure: bad signature,
	// malformed structure, missing required claims, expiry.
	ErrTokenInvalid = errors.New("invalid token")

	ErrTodoNotFound = errors.New("todo not found")
	ErrForbidden    = errors.New("access forbidden")

	// ErrTooManyAttempts is returned when the login limiter throttles a
	// username after repeated failures.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
