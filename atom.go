package cronex

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	dynamicRe = regexp.MustCompile(
		`^(L|L-[0-9]+|[0-9]+#[0-9]+|[0-9]+L|[0-9]+W)$`)
	rangeRe = regexp.MustCompile(
		`^(([0-9]+)-([0-9]+)|\*)(/([0-9]+))?$`)
)

// splitAtoms splits one field's text into comma-separated atoms.
// Wildcards must stand alone, and "?" is only meaningful in the days
// and days-of-the-week fields.
func splitAtoms(f field, text string) ([]string, error) {
	atoms := strings.Split(text, ",")
	if len(atoms) > 1 {
		for _, atom := range atoms {
			if atom == "*" || atom == "?" {
				return nil, fieldErr(f, ErrInvalidUsage,
					"%q must be the only value in a field", atom)
			}
		}
	}
	for _, atom := range atoms {
		if atom == "" {
			return nil, fieldErr(f, ErrSyntax,
				"%q contains an empty expression", text)
		}
	}
	return atoms, nil
}

// checkBounds verifies that every value lies within the field's
// declared range.
func checkBounds(f field, expr string, values ...int) error {
	b := fieldBounds[f]
	var bad []string
	for _, v := range values {
		if v < b.min || v > b.max {
			bad = append(bad, strconv.Itoa(v))
		}
	}
	if bad == nil {
		return nil
	}
	return fieldErr(f, ErrOutOfBounds,
		"valid values range from %d to %d, but %q includes %s",
		b.min, b.max, expr, strings.Join(bad, ", "))
}

// dow7to0 folds the alternate Sunday spelling onto zero.
func dow7to0(f field, v int) int {
	if f == fieldDaysOfWeek && v == 7 {
		return 0
	}
	return v
}

// expand converts a fixed atom into the set of values it enumerates:
// a single value, an inclusive A-B range, a wraparound range when
// A > B, or either form (and "*") with a step. In Vixie cron a step
// larger than the range collapses the expansion to its first value;
// that behavior is preserved.
func expand(f field, atom string) ([]int, error) {
	if v, err := strconv.Atoi(atom); err == nil && atom[0] != '-' {
		v = dow7to0(f, v)
		if err := checkBounds(f, atom, v); err != nil {
			return nil, err
		}
		return []int{v}, nil
	}

	m := rangeRe.FindStringSubmatch(atom)
	if m == nil {
		return nil, fieldErr(f, ErrSyntax,
			"%q is not a valid number or range expression", atom)
	}

	step := 1
	if m[5] != "" {
		step, _ = strconv.Atoi(m[5])
		if step < 1 {
			return nil, fieldErr(f, ErrOutOfBounds,
				"step size must be greater than 0")
		}
	}

	b := fieldBounds[f]
	first, last := b.min, b.max
	if m[1] != "*" {
		first, _ = strconv.Atoi(m[2])
		last, _ = strconv.Atoi(m[3])
		first = dow7to0(f, first)
		last = dow7to0(f, last)
		if err := checkBounds(f, atom, first, last); err != nil {
			return nil, err
		}
	}

	if first <= last {
		var values []int
		for v := first; v <= last; v += step {
			values = append(values, v)
		}
		return values, nil
	}

	// Wraparound: walk up to the field maximum, then from the field
	// minimum to the end of the range, striding over the
	// concatenation.
	var cycle []int
	for v := first; v <= b.max; v++ {
		cycle = append(cycle, v)
	}
	for v := b.min; v <= last; v++ {
		cycle = append(cycle, v)
	}
	var values []int
	for i := 0; i < len(cycle); i += step {
		values = append(values, cycle[i])
	}
	return values, nil
}

// translate converts a dynamic construct into the annotation a
// matching date must carry.
func translate(f field, atom string) (annotation, error) {
	none := annotation{}

	if prefix, ok := strings.CutSuffix(atom, "L"); ok && atom != "L" {
		d, _ := strconv.Atoi(prefix)
		d = dow7to0(f, d)
		if f != fieldDaysOfWeek {
			return none, fieldErr(f, ErrInvalidUsage,
				"last occurrence of a weekday (%q) is only valid in the"+
					" days of the week field", atom)
		}
		if err := checkBounds(f, atom, d); err != nil {
			return none, err
		}
		return annotation{annLastWeekday, d, 0}, nil
	}

	if atom == "L" {
		if f != fieldDays {
			return none, fieldErr(f, ErrInvalidUsage,
				"'L' (last day of the month) is only valid in the days"+
					" field")
		}
		return annotation{annDaysToMonthEnd, 0, 0}, nil
	}

	if rest, ok := strings.CutPrefix(atom, "L-"); ok {
		distance, _ := strconv.Atoi(rest)
		if f != fieldDays {
			return none, fieldErr(f, ErrInvalidUsage,
				"days before the end of the month (%q) is only valid in"+
					" the days field", atom)
		}
		if distance > 30 {
			return none, fieldErr(f, ErrOutOfBounds,
				"the longest months have 31 days, so %d days before the"+
					" end of the month is invalid", distance)
		}
		return annotation{annDaysToMonthEnd, distance, 0}, nil
	}

	if dStr, nStr, ok := strings.Cut(atom, "#"); ok {
		d, _ := strconv.Atoi(dStr)
		n, _ := strconv.Atoi(nStr)
		d = dow7to0(f, d)
		if f != fieldDaysOfWeek {
			return none, fieldErr(f, ErrInvalidUsage,
				"Nth occurrence of a weekday (%q) is only valid in the"+
					" days of the week field", atom)
		}
		if err := checkBounds(f, atom, d); err != nil {
			return none, err
		}
		if n < 1 || n > 5 {
			return none, fieldErr(f, ErrOutOfBounds,
				"the week number must be between 1 and 5 (found %d in"+
					" %q)", n, atom)
		}
		return annotation{annNthWeekday, d, n}, nil
	}

	// dynamicRe admits nothing else, so this must be dW.
	d, _ := strconv.Atoi(strings.TrimSuffix(atom, "W"))
	if f != fieldDays {
		return none, fieldErr(f, ErrInvalidUsage,
			"nearest weekday (%q) is only valid in the days field", atom)
	}
	if err := checkBounds(f, atom, d); err != nil {
		return none, err
	}
	return annotation{annNearestWeekday, d, 0}, nil
}

// cycleLength is the natural cycle of fields whose monotonic
// constraints can reduce to fixed sets when the period divides it
// evenly. Zero means no such reduction exists for the field.
func cycleLength(f field) int {
	switch f {
	case fieldMonths:
		return 12
	case fieldSeconds:
		return 60
	}
	return 0
}

// parsePeriod validates a %-prefixed monotonic atom and returns its
// period.
func parsePeriod(f field, atom string) (int, error) {
	if f == fieldDaysOfWeek {
		return 0, fieldErr(f, ErrInvalidUsage,
			"monotonic constraints cannot be used in the days of the"+
				" week field")
	}
	period, err := strconv.Atoi(atom[1:])
	if err != nil {
		return 0, fieldErr(f, ErrSyntax,
			"expected integer after %% in %q", atom)
	}
	if period < 2 {
		return 0, fieldErr(f, ErrOutOfBounds,
			"period must be greater than 1")
	}
	return period, nil
}

// simplifyPeriods sorts a monotonic period set and removes redundant
// multiples: if P divides Q, every instant Q fires on, P fires on
// too.
func simplifyPeriods(periods []int) []int {
	if len(periods) < 2 {
		return periods
	}
	slices.Sort(periods)
	periods = slices.Compact(periods)
	kept := periods[:0]
	for _, p := range periods {
		redundant := false
		for _, q := range kept {
			if p%q == 0 {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, p)
		}
	}
	return kept
}
