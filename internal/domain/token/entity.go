package token

import "time"

// ConfirmationToken is a single-use token handed to a user so an external
// flow (email link, kiosk code) can confirm an action on their behalf.
type ConfirmationToken struct {
	ID        int
	Token     string
	UserID    string
	Purpose   string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token can no longer be redeemed.
func (t ConfirmationToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsUsed reports whether the token has already been redeemed.
func (t ConfirmationToken) IsUsed() bool {
	return t.UsedAt != nil
}
