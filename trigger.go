package cronex

import "time"

// Matches reports whether the schedule fires at the given instant.
// Wall-clock fields are read in the instant's own location; elapsed
// deltas for monotonic constraints use absolute time, so the
// instant's UTC offset is honored against the epoch's.
func (e *Expression) Matches(t time.Time) bool {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	var secondsDelta, monthsDelta int64
	if e.hasEpoch {
		secondsDelta = t.Unix() - e.epochUnix
		monthsDelta = int64(year*12+int(month)-1) - int64(e.epochMonths)
	}

	if !e.fieldMatch(fieldSeconds, second, secondsDelta, 1) {
		return false
	}
	if !e.fieldMatch(fieldMinutes, minute, secondsDelta, 60) {
		return false
	}
	if !e.fieldMatch(fieldHours, hour, secondsDelta, 3600) {
		return false
	}
	if !e.fieldMatch(fieldMonths, int(month), monthsDelta, 1) {
		return false
	}
	// Year periods reduce to fixed sets at compile time, so the
	// fixed set is the whole constraint.
	if !e.fixed[fieldYears].contains(year) {
		return false
	}

	// Day-of-month and day-of-week resolve last. A fixed or
	// monotonic day match wins outright; otherwise the date's
	// calendar annotations must intersect the required set.
	if e.fixed[fieldDays].contains(day) ||
		periodsMatch(e.monotonic[fieldDays], secondsDelta, 86400) {
		return true
	}
	if len(e.annotations) > 0 {
		return annotate(year, int(month), day).intersects(e.annotations)
	}
	return false
}

func (e *Expression) fieldMatch(
	f field, value int, delta, unit int64,
) bool {
	if e.fixed[f].contains(value) {
		return true
	}
	return periodsMatch(e.monotonic[f], delta, unit)
}

// periodsMatch reports whether the elapsed delta, measured in whole
// units, is an exact multiple of any period in the set.
func periodsMatch(periods []int, delta, unit int64) bool {
	if len(periods) == 0 {
		return false
	}
	delta /= unit
	for _, p := range periods {
		if delta%int64(p) == 0 {
			return true
		}
	}
	return false
}
