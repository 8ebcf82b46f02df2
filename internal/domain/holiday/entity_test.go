package holiday

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHoliday_LocalNameDefaultsToName(t *testing.T) {
	h, err := NewHoliday(Holiday{
		Name:      "Independence Day",
		StartDate: time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "Independence Day", h.LocalName)
}

func TestNewHoliday_Validation(t *testing.T) {
	start := time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)

	_, err := NewHoliday(Holiday{Name: "  ", StartDate: start, EndDate: start})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewHoliday(Holiday{Name: "Holiday", StartDate: start, EndDate: start.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	long := strings.Repeat("x", MaxDescriptionLength+1)
	_, err = NewHoliday(Holiday{Name: "Holiday", StartDate: start, EndDate: start, Description: &long})
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestNewHoliday_BlankDescriptionNormalizedToNil(t *testing.T) {
	start := time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)
	blank := "   "

	h, err := NewHoliday(Holiday{Name: "Holiday", StartDate: start, EndDate: start, Description: &blank})

	require.NoError(t, err)
	assert.Nil(t, h.Description)
}
