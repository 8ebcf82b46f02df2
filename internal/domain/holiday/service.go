package holiday

import "context"

// HolidayService defines business logic for holiday operations
type HolidayService interface {
	// CreateHoliday registers a holiday on the calendar
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// GetHoliday retrieves a single holiday by ID
	GetHoliday(ctx context.Context, id int) (HolidayResponse, error)

	// ListHolidaysByRange retrieves holidays overlapping a calendar window
	ListHolidaysByRange(ctx context.Context, filter HolidayRangeFilter) ([]HolidayResponse, error)

	// DeleteHoliday removes a holiday
	DeleteHoliday(ctx context.Context, id int) error
}
