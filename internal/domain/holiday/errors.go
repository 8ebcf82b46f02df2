package holiday

import "errors"

var (
	ErrInvalidName        = errors.New("holiday name cannot be blank")
	ErrInvalidDateRange   = errors.New("end date cannot be earlier than start date")
	ErrDescriptionTooLong = errors.New("description cannot exceed 360 characters")

	ErrHolidayNotFound = errors.New("holiday not found")
)
