package token

import "context"

// TokenRepository defines data access methods for confirmation tokens.
type TokenRepository interface {
	// Create inserts a new token and returns it with its ID set
	Create(ctx context.Context, token ConfirmationToken) (ConfirmationToken, error)

	// GetByToken retrieves a token by its opaque value
	GetByToken(ctx context.Context, value string) (ConfirmationToken, error)

	// MarkUsed stamps the token as redeemed
	MarkUsed(ctx context.Context, id int) error
}
