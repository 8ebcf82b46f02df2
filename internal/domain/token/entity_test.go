package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationToken_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tok := ConfirmationToken{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, tok.IsExpired(now))
	assert.False(t, tok.IsExpired(tok.ExpiresAt))
	assert.True(t, tok.IsExpired(tok.ExpiresAt.Add(time.Second)))
}

func TestConfirmationToken_IsUsed(t *testing.T) {
	tok := ConfirmationToken{}
	assert.False(t, tok.IsUsed())

	usedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tok.UsedAt = &usedAt
	assert.True(t, tok.IsUsed())
}
