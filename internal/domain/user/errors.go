package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrCreateNotSupported guards the create entry point. Accounts are
	// provisioned by the identity system, never through this service.
	ErrCreateNotSupported = errors.New("user creation is not supported by this service")
)
