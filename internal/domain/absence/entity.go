package absence

import (
	"strings"
	"time"
)

// Confirmation sub-statuses. Toggles only ever move pending to confirmed;
// there is no revert operation.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

const MaxReasonLength = 360

// Absence is a planned time away from work. The type and the dates are
// confirmed independently, possibly by different admins; the record counts as
// fully confirmed only once both sub-statuses are confirmed.
type Absence struct {
	ID            int
	UserID        string
	AbsenceTypeID int

	StartDate   time.Time
	StartHour   int
	StartMinute int
	EndDate     time.Time
	EndHour     int
	EndMinute   int
	IsFullDate  bool

	Reason *string

	StatusOfType     string
	StatusOfDates    string
	IsFullyConfirmed bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
	TypeName *string
}

// NewAbsence validates the raw field values and returns a normalized copy.
// Full-day absences get their time-of-day fields reset to span whole days;
// partial absences must start and end on the same date.
func NewAbsence(a Absence) (Absence, error) {
	if strings.TrimSpace(a.UserID) == "" {
		return Absence{}, ErrInvalidUserID
	}
	if a.AbsenceTypeID <= 0 {
		return Absence{}, ErrInvalidAbsenceTypeID
	}

	startDay := dateOnly(a.StartDate)
	endDay := dateOnly(a.EndDate)

	if a.IsFullDate {
		if endDay.Before(startDay) {
			return Absence{}, ErrInvalidDateRangeForFullDay
		}
		a.StartHour, a.StartMinute = 0, 0
		a.EndHour, a.EndMinute = 23, 59
	} else {
		if !isValidTimeOfDay(a.StartHour, a.StartMinute) || !isValidTimeOfDay(a.EndHour, a.EndMinute) {
			return Absence{}, ErrInvalidTimeOfDay
		}
		if !endDay.Equal(startDay) {
			return Absence{}, ErrPartialDayDateMismatch
		}
		startMinutes := a.StartHour*60 + a.StartMinute
		endMinutes := a.EndHour*60 + a.EndMinute
		if endMinutes <= startMinutes {
			return Absence{}, ErrEndTimeNotAfterStartTime
		}
	}

	if a.Reason != nil {
		if strings.TrimSpace(*a.Reason) == "" {
			a.Reason = nil
		} else if len(*a.Reason) > MaxReasonLength {
			return Absence{}, ErrReasonTooLong
		}
	}

	if a.StatusOfType == "" {
		a.StatusOfType = StatusPending
	}
	if a.StatusOfDates == "" {
		a.StatusOfDates = StatusPending
	}
	if !isValidStatus(a.StatusOfType) || !isValidStatus(a.StatusOfDates) {
		return Absence{}, ErrInvalidConfirmationStatus
	}
	a.IsFullyConfirmed = a.StatusOfType == StatusConfirmed && a.StatusOfDates == StatusConfirmed

	return a, nil
}

// ConfirmType marks the absence type as approved. Confirmation is one-way.
func (a *Absence) ConfirmType() {
	a.StatusOfType = StatusConfirmed
	a.deriveFullyConfirmed()
}

// ConfirmDates marks the absence dates as approved. Confirmation is one-way.
func (a *Absence) ConfirmDates() {
	a.StatusOfDates = StatusConfirmed
	a.deriveFullyConfirmed()
}

func (a *Absence) deriveFullyConfirmed() {
	a.IsFullyConfirmed = a.StatusOfType == StatusConfirmed && a.StatusOfDates == StatusConfirmed
}

func isValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed
}

func isValidTimeOfDay(hour, minute int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
