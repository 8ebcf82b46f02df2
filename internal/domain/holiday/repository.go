package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for holidays.
type HolidayRepository interface {
	// Create inserts a new holiday and returns it with its ID set
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id int) (Holiday, error)

	// ListByRange retrieves holidays overlapping the window
	ListByRange(ctx context.Context, startDate, endDate time.Time) ([]Holiday, error)

	// Delete removes a holiday
	Delete(ctx context.Context, id int) error
}
