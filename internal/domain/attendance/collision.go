package attendance

import "time"

// CollidesWithPoint reports whether an existing interval blocks a new open
// interval starting at the given instant. An open existing interval has no
// upper bound and therefore blocks every candidate start; a closed one blocks
// the candidate only when its end is strictly after the start point. An end
// that lands exactly on the start point does not collide.
func CollidesWithPoint(existing Attendance, startDate time.Time, startHour, startMinute int) bool {
	if existing.EndDate == nil {
		return true
	}
	end := stamp(*existing.EndDate, existing.EndHour, existing.EndMinute)
	return end.After(stamp(startDate, startHour, startMinute))
}

// CollidesWithRange reports whether an existing interval overlaps the
// candidate range. Two intervals collide unless one entirely precedes the
// other; meeting exactly at a boundary is allowed. A nil end means the
// existing interval never ends and so never precedes anything.
func CollidesWithRange(existing Attendance,
	startDate time.Time, startHour, startMinute int,
	endDate time.Time, endHour, endMinute int) bool {

	candidateStart := stamp(startDate, startHour, startMinute)
	candidateEnd := stamp(endDate, endHour, endMinute)

	endsAtOrBeforeStart := false
	if existing.EndDate != nil {
		end := stamp(*existing.EndDate, existing.EndHour, existing.EndMinute)
		endsAtOrBeforeStart = !end.After(candidateStart)
	}

	startsAtOrAfterEnd := !existing.StartDateTime().Before(candidateEnd)

	return !(endsAtOrBeforeStart || startsAtOrAfterEnd)
}

// HasRangeCollision runs CollidesWithRange over a set of intervals belonging
// to the same card, optionally skipping one ID for update-in-place checks.
func HasRangeCollision(existing []Attendance,
	startDate time.Time, startHour, startMinute int,
	endDate time.Time, endHour, endMinute int,
	excludeID *int) bool {

	for _, att := range existing {
		if excludeID != nil && att.ID == *excludeID {
			continue
		}
		if CollidesWithRange(att, startDate, startHour, startMinute, endDate, endHour, endMinute) {
			return true
		}
	}
	return false
}
