package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func closedInterval(id int, startHour, startMinute, endHour, endMinute int) Attendance {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	endDate := day
	return Attendance{
		ID:          id,
		CardID:      1,
		StartDate:   day,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndDate:     &endDate,
		EndHour:     endHour,
		EndMinute:   endMinute,
	}
}

func openInterval(id int, startHour, startMinute int) Attendance {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return Attendance{
		ID:          id,
		CardID:      1,
		StartDate:   day,
		StartHour:   startHour,
		StartMinute: startMinute,
	}
}

func TestCollidesWithPoint(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("open interval blocks every start point", func(t *testing.T) {
		assert.True(t, CollidesWithPoint(openInterval(1, 8, 0), day, 23, 0))
	})

	t.Run("end exactly at start point does not collide", func(t *testing.T) {
		assert.False(t, CollidesWithPoint(closedInterval(1, 8, 0, 9, 0), day, 9, 0))
	})

	t.Run("end after start point collides", func(t *testing.T) {
		assert.True(t, CollidesWithPoint(closedInterval(1, 8, 0, 9, 1), day, 9, 0))
	})

	t.Run("end before start point does not collide", func(t *testing.T) {
		assert.False(t, CollidesWithPoint(closedInterval(1, 8, 0, 8, 59), day, 9, 0))
	})
}

func TestCollidesWithRange(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("touching boundaries do not collide", func(t *testing.T) {
		existing := closedInterval(1, 8, 0, 9, 0)

		// Candidate starts exactly where the existing interval ends.
		assert.False(t, CollidesWithRange(existing, day, 9, 0, day, 10, 0))

		// Candidate ends exactly where the existing interval starts.
		assert.False(t, CollidesWithRange(existing, day, 7, 0, day, 8, 0))
	})

	t.Run("overlap collides", func(t *testing.T) {
		existing := closedInterval(1, 8, 0, 9, 0)
		assert.True(t, CollidesWithRange(existing, day, 8, 30, day, 9, 30))
	})

	t.Run("candidate inside existing collides", func(t *testing.T) {
		existing := closedInterval(1, 8, 0, 12, 0)
		assert.True(t, CollidesWithRange(existing, day, 9, 0, day, 10, 0))
	})

	t.Run("open existing interval collides with any later range", func(t *testing.T) {
		existing := openInterval(1, 8, 0)
		assert.True(t, CollidesWithRange(existing, day, 9, 0, day, 10, 0))
	})

	t.Run("open existing interval starting at candidate end does not collide", func(t *testing.T) {
		existing := openInterval(1, 10, 0)
		assert.False(t, CollidesWithRange(existing, day, 9, 0, day, 10, 0))
	})
}

func TestHasRangeCollision(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	existing := []Attendance{
		closedInterval(1, 8, 0, 9, 0),
		closedInterval(2, 10, 0, 11, 0),
	}

	assert.True(t, HasRangeCollision(existing, day, 10, 30, day, 11, 30, nil))

	// Excluding the colliding record makes the range acceptable.
	excludeID := 2
	assert.False(t, HasRangeCollision(existing, day, 10, 30, day, 11, 30, &excludeID))

	// A gap between the two records is acceptable.
	assert.False(t, HasRangeCollision(existing, day, 9, 0, day, 10, 0, nil))
}
