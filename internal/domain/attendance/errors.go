package attendance

import "errors"

// Attendance entity validation errors
var (
	ErrInvalidCardID            = errors.New("card id must be greater than zero")
	ErrInvalidUserID            = errors.New("user id cannot be blank")
	ErrInvalidCompanyID         = errors.New("company id must be greater than zero")
	ErrInvalidStartTime         = errors.New("start hour and minute must form a valid time of day")
	ErrStartTimeInFuture        = errors.New("start time cannot be later than the current time")
	ErrInvalidEndTime           = errors.New("end hour and minute must form a valid time of day")
	ErrInvalidEndDate           = errors.New("end date cannot be earlier than start date")
	ErrEndTimeNotAfterStartTime = errors.New("end time must be after start time")
	ErrEndTimeInFuture          = errors.New("end time cannot be later than the current time")
	ErrInvalidResolvedPair      = errors.New("resolved at and resolved by must both be set or both be empty")
	ErrStrangeActivityReasonTooLong = errors.New("strange activity reason cannot exceed 360 characters")
)

// Attendance service errors
var (
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrAttendanceCollision    = errors.New("attendance dates collide with existing records")
	ErrAdminNotFound          = errors.New("admin user not found")
	ErrUpdateMethodNotAllowed = errors.New("direct attendance update is not allowed, use update-or-resolve")
)

// Strange-activity evaluation failures. These never abort an operation; the
// failing message is stored on the record as the strange-activity reason.
var (
	ErrDailyEntryLimitExceeded       = errors.New("attendance entries for the day cannot exceed 10")
	ErrDailyWorkHoursExceeded        = errors.New("worked time for the day cannot exceed 10 hours")
	ErrPreviousDayEntryLimitExceeded = errors.New("attendance entries for the previous day cannot exceed 10")
	ErrPreviousDayWorkHoursExceeded  = errors.New("worked time for the previous day cannot exceed 10 hours")
)
