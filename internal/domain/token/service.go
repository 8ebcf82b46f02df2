package token

import (
	"context"
	"time"
)

// TokenService defines business logic for confirmation tokens
type TokenService interface {
	// IssueToken mints a fresh token for a user and purpose
	IssueToken(ctx context.Context, userID, purpose string, ttl time.Duration) (ConfirmationToken, error)

	// RedeemToken validates and consumes a token
	RedeemToken(ctx context.Context, value string) (ConfirmationToken, error)

	// DeleteToken always fails with ErrDeleteNotSupported
	DeleteToken(ctx context.Context, id int) error
}
