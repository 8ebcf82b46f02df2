package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() Card {
	return Card{
		Number:    "10004321",
		UserID:    "user-1",
		CompanyID: 1,
		Type:      TypePersonal,
	}
}

func TestNewCard_Valid(t *testing.T) {
	c, err := NewCard(validCard())

	require.NoError(t, err)
	assert.False(t, c.IsDeleted())
}

func TestNewCard_TrimsNumber(t *testing.T) {
	c := validCard()
	c.Number = "  10004321  "

	result, err := NewCard(c)

	require.NoError(t, err)
	assert.Equal(t, "10004321", result.Number)
}

func TestNewCard_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Card)
		wantErr error
	}{
		{"blank number", func(c *Card) { c.Number = "  " }, ErrInvalidCardNumber},
		{"blank user id", func(c *Card) { c.UserID = "" }, ErrInvalidUserID},
		{"zero company id", func(c *Card) { c.CompanyID = 0 }, ErrInvalidCompanyID},
		{"unknown type", func(c *Card) { c.Type = "visitor" }, ErrInvalidCardType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)

			_, err := NewCard(c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCard_DeletedPairMustMatch(t *testing.T) {
	deletedAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	adminID := "admin-1"

	c := validCard()
	c.DeletedAt = &deletedAt
	_, err := NewCard(c)
	assert.ErrorIs(t, err, ErrInvalidDeletedPair)

	c = validCard()
	c.DeletedByID = &adminID
	_, err = NewCard(c)
	assert.ErrorIs(t, err, ErrInvalidDeletedPair)

	c = validCard()
	c.DeletedAt = &deletedAt
	c.DeletedByID = &adminID
	result, err := NewCard(c)
	require.NoError(t, err)
	assert.True(t, result.IsDeleted())
}
