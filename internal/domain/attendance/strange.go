package attendance

import (
	"log/slog"
	"time"
)

// EvaluateStrangeActivity decides whether closing (or editing) an interval to
// the given window would leave the card in a state worth flagging for admin
// review. The siblings are the card's other intervals from the day before the
// end date through the end date. Returns nil when the state looks normal; the
// returned error otherwise carries the reason to store on the record.
//
// The result is advisory: callers annotate the record instead of aborting.
func EvaluateStrangeActivity(
	startDate time.Time, startHour, startMinute int,
	endDate *time.Time, endHour, endMinute int,
	siblings []Attendance) error {

	if endDate == nil {
		return nil
	}

	start := stamp(startDate, startHour, startMinute)
	end := stamp(*endDate, endHour, endMinute)

	today := dateOnly(*endDate)
	yesterday := today.AddDate(0, 0, -1)

	var todayCount, yesterdayCount int
	var todayMinutes, yesterdayMinutes int
	for _, sibling := range siblings {
		switch day := dateOnly(sibling.StartDate); {
		case day.Equal(today):
			todayCount++
			todayMinutes += durationMinutes(sibling)
		case day.Equal(yesterday):
			yesterdayCount++
			yesterdayMinutes += durationMinutes(sibling)
		}
	}

	// Credit the candidate itself, splitting at midnight when it spans days.
	spansTwoDays := !dateOnly(startDate).Equal(today)
	if spansTwoDays {
		yesterdayMinutes += int(endOfDay(start).Sub(start).Minutes())
		todayMinutes += int(end.Sub(startOfDay(end)).Minutes())
	} else {
		todayMinutes += int(end.Sub(start).Minutes())
	}

	if todayCount >= MaxDailyAttendanceLimit {
		return ErrDailyEntryLimitExceeded
	}
	if todayMinutes > MaxDailyWorkHours*60 {
		return ErrDailyWorkHoursExceeded
	}

	if spansTwoDays {
		if yesterdayCount >= MaxDailyAttendanceLimit {
			return ErrPreviousDayEntryLimitExceeded
		}
		if yesterdayMinutes > MaxDailyWorkHours*60 {
			return ErrPreviousDayWorkHoursExceeded
		}
	}

	return nil
}

// durationMinutes returns the length of a closed interval in whole minutes.
// Open intervals contribute nothing to the daily totals.
func durationMinutes(att Attendance) int {
	end := att.EndDateTime()
	if end == nil {
		slog.Warn("attendance duration skipped: interval has no end", "attendance_id", att.ID)
		return 0
	}
	return int(end.Sub(att.StartDateTime()).Minutes())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}
