package absence

import "errors"

var (
	ErrInvalidUserID              = errors.New("user id cannot be blank")
	ErrInvalidAbsenceTypeID       = errors.New("absence type id must be greater than zero")
	ErrInvalidTimeOfDay           = errors.New("hour and minute must form a valid time of day")
	ErrInvalidDateRangeForFullDay = errors.New("end date cannot be earlier than start date for a full day absence")
	ErrPartialDayDateMismatch     = errors.New("partial day absence must start and end on the same date")
	ErrEndTimeNotAfterStartTime   = errors.New("end time must be after start time")
	ErrReasonTooLong              = errors.New("reason cannot exceed 360 characters")
	ErrInvalidConfirmationStatus  = errors.New("confirmation status must be pending or confirmed")

	ErrAbsenceNotFound     = errors.New("absence not found")
	ErrAbsenceTypeNotFound = errors.New("absence type not found")
)
