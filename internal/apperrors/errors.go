// Package apperrors defines the error taxonomy the service layer speaks
// and handlers translate into HTTP statuses.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or semantically invalid input.
	ErrValidation = errors.New("validation failed")

	// ErrPermission marks an operation the viewer is not allowed to
	// perform, including an unconfirmed file deletion.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound marks a missing or soft-deleted resource.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyAuthenticated rejects register/login while a valid
	// session token is already presented.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConfiguration marks startup-time misconfiguration, fatal by
	// convention.
	ErrConfiguration = errors.New("configuration error")
)

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsPermission(err error) bool { return errors.Is(err, ErrPermission) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
