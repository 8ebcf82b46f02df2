package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record and returns it with its ID set
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id int) (Attendance, error)

	// GetLastByCardID returns the card's most recent record ordered by start
	// date, hour and minute descending, preferring the open one on ties.
	// Returns nil when the card has no history.
	GetLastByCardID(ctx context.Context, cardID int) (*Attendance, error)

	// Update rewrites an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id int) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByCard retrieves all of a card's records, optionally skipping one ID
	ListByCard(ctx context.Context, cardID int, excludeID *int) ([]Attendance, error)

	// ListForStrangeActivity retrieves the card's records that start on or
	// after the day before endDate and end on or before endDate, skipping
	// excludeID when set
	ListForStrangeActivity(ctx context.Context, cardID int, endDate time.Time, excludeID *int) ([]Attendance, error)

	// HasPointCollision reports whether any of the card's records is open or
	// ends strictly after the given instant, skipping excludeID when set
	HasPointCollision(ctx context.Context, cardID int, startDate time.Time, startHour, startMinute int, excludeID *int) (bool, error)

	// LockCard serializes concurrent punches on the same card for the rest of
	// the current transaction
	LockCard(ctx context.Context, cardID int) error
}
