package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func closedSibling(day time.Time, startHour, startMinute, endHour, endMinute int) Attendance {
	endDate := day
	return Attendance{
		CardID:      1,
		StartDate:   day,
		StartHour:   startHour,
		StartMinute: startMinute,
		EndDate:     &endDate,
		EndHour:     endHour,
		EndMinute:   endMinute,
	}
}

func TestEvaluateStrangeActivity_OpenCandidateIsNormal(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	err := EvaluateStrangeActivity(day, 8, 0, nil, 0, 0, nil)
	assert.NoError(t, err)
}

func TestEvaluateStrangeActivity_DailyEntryLimit(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var siblings []Attendance
	for i := 0; i < MaxDailyAttendanceLimit; i++ {
		siblings = append(siblings, closedSibling(day, 8, i, 8, i+1))
	}

	err := EvaluateStrangeActivity(day, 9, 0, &day, 9, 5, siblings)
	assert.ErrorIs(t, err, ErrDailyEntryLimitExceeded)

	// One fewer sibling and the count is acceptable.
	err = EvaluateStrangeActivity(day, 9, 0, &day, 9, 5, siblings[:MaxDailyAttendanceLimit-1])
	assert.NoError(t, err)
}

func TestEvaluateStrangeActivity_DailyWorkHours(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Exactly ten hours is acceptable; one minute more is not.
	err := EvaluateStrangeActivity(day, 8, 0, &day, 18, 0, nil)
	assert.NoError(t, err)

	err = EvaluateStrangeActivity(day, 8, 0, &day, 18, 1, nil)
	assert.ErrorIs(t, err, ErrDailyWorkHoursExceeded)
}

func TestEvaluateStrangeActivity_SiblingMinutesCount(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	siblings := []Attendance{closedSibling(day, 6, 0, 11, 0)} // 300 minutes

	// 300 from the sibling plus 300 from the candidate stays at the limit.
	err := EvaluateStrangeActivity(day, 12, 0, &day, 17, 0, siblings)
	assert.NoError(t, err)

	// One more candidate minute tips the total over.
	err = EvaluateStrangeActivity(day, 12, 0, &day, 17, 1, siblings)
	assert.ErrorIs(t, err, ErrDailyWorkHoursExceeded)
}

func TestEvaluateStrangeActivity_OpenSiblingContributesNothing(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	siblings := []Attendance{{CardID: 1, StartDate: day, StartHour: 0, StartMinute: 0}}

	// An open sibling is counted as an entry but adds no minutes.
	err := EvaluateStrangeActivity(day, 8, 0, &day, 18, 0, siblings)
	assert.NoError(t, err)
}

func TestEvaluateStrangeActivity_SplitsAtMidnight(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// 20:00 to 02:00 credits roughly four hours to yesterday and two to today,
	// so neither day exceeds the limit on its own.
	err := EvaluateStrangeActivity(yesterday, 20, 0, &today, 2, 0, nil)
	assert.NoError(t, err)

	// Yesterday already holds 7h; adding ~4h more pushes it past ten hours.
	siblings := []Attendance{closedSibling(yesterday, 8, 0, 15, 0)}
	err = EvaluateStrangeActivity(yesterday, 20, 0, &today, 2, 0, siblings)
	assert.ErrorIs(t, err, ErrPreviousDayWorkHoursExceeded)
}

func TestEvaluateStrangeActivity_PreviousDayEntryLimit(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var siblings []Attendance
	for i := 0; i < MaxDailyAttendanceLimit; i++ {
		siblings = append(siblings, closedSibling(yesterday, 8, i, 8, i+1))
	}

	err := EvaluateStrangeActivity(yesterday, 20, 0, &today, 2, 0, siblings)
	assert.ErrorIs(t, err, ErrPreviousDayEntryLimitExceeded)
}

func TestEvaluateStrangeActivity_TodayCheckedBeforeYesterday(t *testing.T) {
	yesterday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Both days are over their limits; the end-date day wins.
	var siblings []Attendance
	for i := 0; i < MaxDailyAttendanceLimit; i++ {
		siblings = append(siblings, closedSibling(yesterday, 8, i, 8, i+1))
		siblings = append(siblings, closedSibling(today, 8, i, 8, i+1))
	}

	err := EvaluateStrangeActivity(yesterday, 20, 0, &today, 2, 0, siblings)
	assert.ErrorIs(t, err, ErrDailyEntryLimitExceeded)
}
