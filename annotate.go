package cronex

// annotationKind distinguishes the calendar-relative constructs that
// cannot be expressed as static value sets.
type annotationKind uint8

const (
	annDayOfWeek      annotationKind = iota // plain weekday
	annLastWeekday                          // last occurrence of a weekday in the month
	annNthWeekday                           // nth occurrence of a weekday
	annDaysToMonthEnd                       // days remaining until the end of the month
	annNearestWeekday                       // nearest weekday to a day of the month
)

// An annotation is a calendar property a date either has or lacks.
// day holds a weekday number or a day of the month depending on the
// kind; n is the occurrence count for annNthWeekday and zero
// otherwise.
type annotation struct {
	kind annotationKind
	day  int
	n    int
}

type annotationSet map[annotation]struct{}

func (s annotationSet) add(a annotation) { s[a] = struct{}{} }

// intersects reports whether any member of o is also in s.
func (s annotationSet) intersects(o annotationSet) bool {
	for a := range o {
		if _, ok := s[a]; ok {
			return true
		}
	}
	return false
}

func (s annotationSet) equal(o annotationSet) bool {
	if len(s) != len(o) {
		return false
	}
	for a := range s {
		if _, ok := o[a]; !ok {
			return false
		}
	}
	return true
}

// weekday computes the day of the week (0 = Sunday) for a Gregorian
// date using a closed-form Zeller-style congruence.
func weekday(year, month, day int) int {
	y := year
	if month < 3 {
		y = year - 1
	}
	dow := 23*month/9 + day + 4 + year + y/4 - y/100 + y/400
	if month >= 3 {
		dow -= 2
	}
	return dow % 7
}

// lastDayOfMonth returns the number of days in the given month,
// applying the divisible-by-4-except-100-unless-400 leap rule.
func lastDayOfMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
	return 31
}

// annotate returns every annotation the given date satisfies. The
// date is not validated; callers supply real calendar dates.
func annotate(year, month, day int) annotationSet {
	last := lastDayOfMonth(year, month)
	dow := weekday(year, month, day)

	set := make(annotationSet)
	set.add(annotation{annDaysToMonthEnd, last - day, 0})
	set.add(annotation{annNthWeekday, dow, (day-1)/7 + 1})
	set.add(annotation{annDayOfWeek, dow, 0})

	if last-day < 7 {
		set.add(annotation{annLastWeekday, dow, 0})
	}

	// Weekdays stand in as the nearest weekday for themselves, for an
	// adjacent weekend day, and near month boundaries for a weekend
	// day two days off.
	if dow >= 1 && dow <= 5 {
		set.add(annotation{annNearestWeekday, day, 0})
		switch dow {
		case 1: // Monday covers the Sunday before it.
			if day > 1 {
				set.add(annotation{annNearestWeekday, day - 1, 0})
			}
			// The month opened on a Saturday; Monday the 3rd is the
			// nearest weekday to the 1st.
			if day == 3 {
				set.add(annotation{annNearestWeekday, 1, 0})
			}
		case 5: // Friday covers the Saturday after it.
			if day < last {
				set.add(annotation{annNearestWeekday, day + 1, 0})
			}
			// The month closes on a Sunday; this Friday is the
			// nearest weekday to it.
			if day+2 == last {
				set.add(annotation{annNearestWeekday, day + 2, 0})
			}
		}
	}
	return set
}
