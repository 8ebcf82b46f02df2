package card

import "context"

// CardRepository defines data access methods for cards.
type CardRepository interface {
	// Create inserts a new card and returns it with its ID set
	Create(ctx context.Context, card Card) (Card, error)

	// GetByID retrieves a card by ID, including soft-deleted ones
	GetByID(ctx context.Context, id int) (Card, error)

	// GetByNumber retrieves an active card by its badge number
	GetByNumber(ctx context.Context, number string) (Card, error)

	// List retrieves cards with filters and pagination
	List(ctx context.Context, filter CardFilter) ([]Card, int64, error)

	// SoftDelete stamps the card as retired
	SoftDelete(ctx context.Context, card Card) error
}
