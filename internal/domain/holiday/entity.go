package holiday

import (
	"strings"
	"time"
)

const MaxDescriptionLength = 360

// Holiday is a public holiday overlaid on the attendance calendar.
type Holiday struct {
	ID          int
	Name        string
	LocalName   string
	StartDate   time.Time
	EndDate     time.Time
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewHoliday validates the raw field values and returns a normalized copy.
func NewHoliday(h Holiday) (Holiday, error) {
	h.Name = strings.TrimSpace(h.Name)
	h.LocalName = strings.TrimSpace(h.LocalName)

	if h.Name == "" {
		return Holiday{}, ErrInvalidName
	}
	if h.LocalName == "" {
		h.LocalName = h.Name
	}
	if dateOnly(h.EndDate).Before(dateOnly(h.StartDate)) {
		return Holiday{}, ErrInvalidDateRange
	}
	if h.Description != nil {
		if strings.TrimSpace(*h.Description) == "" {
			h.Description = nil
		} else if len(*h.Description) > MaxDescriptionLength {
			return Holiday{}, ErrDescriptionTooLong
		}
	}

	return h, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
