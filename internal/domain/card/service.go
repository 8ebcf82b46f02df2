package card

import "context"

// CardService defines business logic for card operations
type CardService interface {
	// CreateCard registers a new badge for a user
	CreateCard(ctx context.Context, req CreateCardRequest) (CardResponse, error)

	// GetCard retrieves a single card by ID
	GetCard(ctx context.Context, id int) (CardResponse, error)

	// ListCards retrieves cards with filters
	ListCards(ctx context.Context, filter CardFilter) (ListCardsResponse, error)

	// DeleteCard soft deletes a card, keeping its attendance history
	DeleteCard(ctx context.Context, req DeleteCardRequest) error
}
