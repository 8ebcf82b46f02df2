package card

import (
	"strings"
	"time"
)

// Card types
const (
	TypePersonal  = "personal"
	TypeTemporary = "temporary"
)

// Card binds a physical badge number to a user within a company. A card is
// soft-deleted so its attendance history stays attributable.
type Card struct {
	ID        int
	Number    string
	UserID    string
	CompanyID int
	Type      string

	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
	DeletedByID   *string

	// DTO
	UserName *string
}

// IsDeleted reports whether the card has been retired.
func (c Card) IsDeleted() bool {
	return c.DeletedAt != nil
}

// NewCard validates the raw field values and returns a normalized copy.
func NewCard(c Card) (Card, error) {
	c.Number = strings.TrimSpace(c.Number)

	if c.Number == "" {
		return Card{}, ErrInvalidCardNumber
	}
	if strings.TrimSpace(c.UserID) == "" {
		return Card{}, ErrInvalidUserID
	}
	if c.CompanyID <= 0 {
		return Card{}, ErrInvalidCompanyID
	}
	if c.Type != TypePersonal && c.Type != TypeTemporary {
		return Card{}, ErrInvalidCardType
	}
	if (c.DeletedAt == nil) != (c.DeletedByID == nil || strings.TrimSpace(*c.DeletedByID) == "") {
		return Card{}, ErrInvalidDeletedPair
	}

	return c, nil
}
