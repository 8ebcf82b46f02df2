package attendance

import (
	"strings"
	"time"
)

const (
	MaxStrangeActivityReasonLength = 360
	MaxDailyAttendanceLimit        = 10
	MaxDailyWorkHours              = 10
)

// Attendance represents one interval a card spent clocked in. Dates and
// wall-clock components are stored separately to match the persisted shape.
// A nil EndDate means the interval is still open.
type Attendance struct {
	ID        int
	CardID    int
	UserID    string
	CompanyID int

	StartDate   time.Time
	StartHour   int
	StartMinute int
	EndDate     *time.Time
	EndHour     int
	EndMinute   int

	IsStrangeActivity     bool
	StrangeActivityReason *string
	ResolvedAt            *time.Time
	ResolvedByID          *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	CardNumber *string
	UserName   *string
}

// IsOpen reports whether the interval has not been closed yet.
func (a Attendance) IsOpen() bool {
	return a.EndDate == nil
}

// StartDateTime combines the start date with the start hour/minute.
func (a Attendance) StartDateTime() time.Time {
	return stamp(a.StartDate, a.StartHour, a.StartMinute)
}

// EndDateTime combines the end date with the end hour/minute, nil while open.
func (a Attendance) EndDateTime() *time.Time {
	if a.EndDate == nil {
		return nil
	}
	t := stamp(*a.EndDate, a.EndHour, a.EndMinute)
	return &t
}

// NewAttendance validates the raw field values and returns a normalized copy.
// Validation order matters: identity references, then the start instant, then
// the end instant, then the resolve pair, then the strange-activity reason.
func NewAttendance(att Attendance, now time.Time) (Attendance, error) {
	// Work in the same naive wall-clock frame the components use.
	now = stamp(now, now.Hour(), now.Minute())

	if att.CardID <= 0 {
		return Attendance{}, ErrInvalidCardID
	}
	if strings.TrimSpace(att.UserID) == "" {
		return Attendance{}, ErrInvalidUserID
	}
	if att.CompanyID <= 0 {
		return Attendance{}, ErrInvalidCompanyID
	}

	if !isValidTimeOfDay(att.StartHour, att.StartMinute) {
		return Attendance{}, ErrInvalidStartTime
	}
	if att.StartDateTime().After(now) {
		return Attendance{}, ErrStartTimeInFuture
	}

	if att.EndDate != nil {
		if !isValidTimeOfDay(att.EndHour, att.EndMinute) {
			return Attendance{}, ErrInvalidEndTime
		}
		endDay := dateOnly(*att.EndDate)
		startDay := dateOnly(att.StartDate)
		end := stamp(*att.EndDate, att.EndHour, att.EndMinute)
		if endDay.Before(startDay) {
			return Attendance{}, ErrInvalidEndDate
		}
		if endDay.Equal(startDay) && !end.After(att.StartDateTime()) {
			return Attendance{}, ErrEndTimeNotAfterStartTime
		}
		if end.After(now) {
			return Attendance{}, ErrEndTimeInFuture
		}
	}

	if (att.ResolvedAt == nil) != (att.ResolvedByID == nil || strings.TrimSpace(*att.ResolvedByID) == "") {
		return Attendance{}, ErrInvalidResolvedPair
	}

	if !att.IsStrangeActivity {
		att.StrangeActivityReason = nil
	} else if att.StrangeActivityReason != nil && len(*att.StrangeActivityReason) > MaxStrangeActivityReasonLength {
		return Attendance{}, ErrStrangeActivityReasonTooLong
	}

	att.StrangeActivityReason = normalize(att.StrangeActivityReason)
	att.ResolvedByID = normalize(att.ResolvedByID)

	return att, nil
}

func isValidTimeOfDay(hour, minute int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60
}

func normalize(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// stamp builds a comparable instant from date components plus hour/minute.
// Everything is pinned to UTC so comparisons ignore the source locations.
func stamp(date time.Time, hour, minute int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
