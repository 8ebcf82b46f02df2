package token

import "errors"

var (
	ErrTokenNotFound = errors.New("confirmation token not found")
	ErrTokenExpired  = errors.New("confirmation token has expired")
	ErrTokenUsed     = errors.New("confirmation token has already been used")

	// ErrDeleteNotSupported guards the delete entry point. Tokens are kept
	// for audit and expire on their own; they are never removed directly.
	ErrDeleteNotSupported = errors.New("confirmation token deletion is not supported")
)
