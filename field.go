package cronex

import (
	"regexp"
	"strconv"
	"strings"
)

// field indexes the seven slots of a fully padded expression.
type field int

const (
	fieldSeconds field = iota
	fieldMinutes
	fieldHours
	fieldDays
	fieldMonths
	fieldDaysOfWeek
	fieldYears
	numFields
)

func (f field) String() string {
	return [...]string{
		"seconds", "minutes", "hours", "days", "months",
		"days of the week", "years",
	}[f]
}

// bounds is the inclusive numeric range of a field.
type bounds struct{ min, max int }

var fieldBounds = [numFields]bounds{
	{0, 59},      // seconds
	{0, 59},      // minutes
	{0, 23},      // hours
	{1, 31},      // days
	{1, 12},      // months
	{0, 6},       // days of the week
	{1970, 9999}, // years
}

// fieldSet is the compiled fixed constraint for one field: either
// unrestricted (wildcard) or an explicit set of permitted values.
type fieldSet struct {
	any    bool
	values map[int]struct{}
}

func newFieldSet() fieldSet {
	return fieldSet{values: make(map[int]struct{})}
}

func unrestricted() fieldSet { return fieldSet{any: true} }

func (s fieldSet) contains(value int) bool {
	if s.any {
		return true
	}
	_, ok := s.values[value]
	return ok
}

func (s *fieldSet) add(values ...int) {
	for _, v := range values {
		s.values[v] = struct{}{}
	}
}

// collapse replaces a set covering the whole field range with the
// unrestricted case.
func (s *fieldSet) collapse(b bounds) {
	if s.any || len(s.values) != b.max-b.min+1 {
		return
	}
	*s = unrestricted()
}

func (s fieldSet) equal(o fieldSet) bool {
	if s.any != o.any || len(s.values) != len(o.values) {
		return false
	}
	for v := range s.values {
		if _, ok := o.values[v]; !ok {
			return false
		}
	}
	return true
}

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var dayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3,
	"thu": 4, "fri": 5, "sat": 6,
}

var (
	monthNameRe = regexp.MustCompile(
		`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
	dayNameRe = regexp.MustCompile(
		`(?i)\b(sun|mon|tue|wed|thu|fri|sat)(l?)\b`)
)

// resolveNames rewrites three-letter month and weekday abbreviations
// to their numeric equivalents. A weekday name may carry a trailing
// "L" (FRIL becomes 5L). Unmatched text passes through for the
// downstream grammar to reject.
func resolveNames(f field, text string) string {
	switch f {
	case fieldMonths:
		return monthNameRe.ReplaceAllStringFunc(text, func(m string) string {
			return strconv.Itoa(monthNames[strings.ToLower(m)])
		})
	case fieldDaysOfWeek:
		return dayNameRe.ReplaceAllStringFunc(text, func(m string) string {
			lower := strings.ToLower(m)
			name, suffix := lower[:3], lower[3:]
			return strconv.Itoa(dayNames[name]) + strings.ToUpper(suffix)
		})
	}
	return text
}
