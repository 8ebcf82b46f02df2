package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CardPunch processes a card swipe: opens a new interval when the card's
	// last record is closed, closes the open one otherwise, and splits an
	// overlong open interval into a capped record plus a fresh open one
	CardPunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// AdminCreate creates an attendance record on a user's behalf
	AdminCreate(ctx context.Context, req AdminCreateRequest) (AttendanceResponse, error)

	// UpdateOrResolve rewrites a record's window, re-evaluates the
	// strange-activity flag and stamps the resolver when the flag clears
	UpdateOrResolve(ctx context.Context, req UpdateOrResolveRequest) (AttendanceResponse, error)

	// Update always fails with ErrUpdateMethodNotAllowed; edits must go
	// through UpdateOrResolve so flags cannot be bypassed
	Update(ctx context.Context, req UpdateOrResolveRequest) (AttendanceResponse, error)

	// DeleteAttendance removes an attendance record
	DeleteAttendance(ctx context.Context, id int) error

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id int) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
