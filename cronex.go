// Package cronex compiles cron expressions and tests instants
// against them. Beyond the classic five fields it supports optional
// seconds and years fields, calendar constructs (L, L-n, nL, n#m,
// nW), and epoch-relative monotonic constraints (%n).
package cronex

import (
	"fmt"
	"strings"
	"time"
)

// A Parser compiles expression text. The zero value parses standard
// five-field expressions with no epoch.
type Parser struct {
	Seconds bool      // expression carries a leading seconds field
	Years   bool      // expression carries a trailing years field
	Epoch   time.Time // zero point for monotonic constraints
}

// An Expression is a compiled constraint set. It is immutable and
// safe for concurrent use; to change the schedule, parse a new one.
type Expression struct {
	Text    string // expression as supplied
	Comment string // free text following the final field

	fixed       [numFields]fieldSet
	monotonic   [numFields][]int
	annotations annotationSet

	hasEpoch    bool
	epochUnix   int64
	epochMonths int
}

// Parse compiles a standard five-field expression with a zero-value
// Parser.
func Parse(text string) (*Expression, error) {
	return Parser{}.Parse(text)
}

// Descriptors substitute a complete field set; the rest of the line
// becomes the expression's comment.
var descriptors = []struct{ name, fields string }{
	{"@yearly", "0 0 1 1 *"},
	{"@annually", "0 0 1 1 *"},
	{"@monthly", "0 0 1 * *"},
	{"@weekly", "0 0 * * 0"},
	{"@daily", "0 0 * * *"},
	{"@midnight", "0 0 * * *"},
	{"@hourly", "0 * * * *"},
}

// Parse compiles expression text into an immutable Expression. All
// validation happens here; a returned Expression never fails to
// evaluate.
func (p Parser) Parse(text string) (*Expression, error) {
	e := &Expression{
		Text:        text,
		annotations: make(annotationSet),
		hasEpoch:    !p.Epoch.IsZero(),
	}
	if e.hasEpoch {
		e.epochUnix = p.Epoch.Unix()
		year, month, _ := p.Epoch.Date()
		e.epochMonths = year*12 + int(month) - 1
	}

	text = strings.TrimLeft(text, " \t")
	for _, d := range descriptors {
		if strings.HasPrefix(text, d.name) {
			fields := d.fields
			if p.Seconds {
				fields = "0 " + fields
			}
			if p.Years {
				fields += " *"
			}
			text = fields + text[len(d.name):]
			break
		}
	}

	expected := 5
	if p.Seconds {
		expected++
	}
	if p.Years {
		expected++
	}
	columns, comment := splitColumns(text, expected)
	if len(columns) < expected {
		return nil, fmt.Errorf("%w: need %d fields but found %d",
			ErrMissingFields, expected, len(columns))
	}
	e.Comment = comment

	// Pad the optional columns so every expression compiles with the
	// full seven fields.
	if !p.Seconds {
		columns = append([]string{"*"}, columns...)
	}
	if !p.Years {
		columns = append(columns, "*")
	}

	for f := fieldSeconds; f < numFields; f++ {
		if err := p.compileField(e, f, columns[f]); err != nil {
			return nil, err
		}
	}

	// Historical cron treats day-of-month and day-of-week as an OR
	// when both are restricted. Day-of-week restrictions live in the
	// annotation set, so an unrestricted days field must stop
	// matching outright and defer to the annotations.
	if e.fixed[fieldDays].any && len(e.annotations) > 0 {
		e.fixed[fieldDays] = newFieldSet()
	}

	return e, nil
}

func (p Parser) compileField(e *Expression, f field, text string) error {
	text = resolveNames(f, text)

	if text == "?" && f != fieldDays && f != fieldDaysOfWeek {
		return fieldErr(f, ErrInvalidUsage,
			"'?' can only appear in the days or days of the week fields")
	}
	if text == "*" || text == "?" {
		e.fixed[f] = unrestricted()
		return nil
	}

	atoms, err := splitAtoms(f, text)
	if err != nil {
		return err
	}

	fixed := newFieldSet()
	var periods []int
	for _, atom := range atoms {
		switch {
		case dynamicRe.MatchString(atom):
			ann, err := translate(f, atom)
			if err != nil {
				return err
			}
			e.annotations.add(ann)

		case strings.HasPrefix(atom, "%"):
			period, err := parsePeriod(f, atom)
			if err != nil {
				return err
			}
			if !e.hasEpoch {
				return fieldErr(f, ErrOutOfBounds,
					"monotonic constraint %q requires an epoch", atom)
			}
			p.reducePeriod(f, period, &fixed, &periods)

		case f == fieldDaysOfWeek:
			values, err := expand(f, atom)
			if err != nil {
				return err
			}
			for _, v := range values {
				e.annotations.add(annotation{annDayOfWeek, v, 0})
			}

		default:
			values, err := expand(f, atom)
			if err != nil {
				return err
			}
			fixed.add(values...)
		}
	}

	fixed.collapse(fieldBounds[f])
	if fixed.any {
		// Every value already matches; the periods are redundant.
		periods = nil
	}
	e.fixed[f] = fixed
	e.monotonic[f] = simplifyPeriods(periods)
	return nil
}

// reducePeriod converts a monotonic period into an equivalent fixed
// set when the period divides the field's natural cycle evenly
// (months and seconds) or the field is years, which always
// enumerates. Other periods stay epoch-relative.
func (p Parser) reducePeriod(
	f field, period int, fixed *fieldSet, periods *[]int,
) {
	switch {
	case f == fieldYears:
		for y := p.Epoch.Year(); y <= fieldBounds[f].max; y += period {
			fixed.add(y)
		}
	case cycleLength(f) != 0 && cycleLength(f)%period == 0:
		cycle := cycleLength(f)
		offset := p.Epoch.Second()
		if f == fieldMonths {
			offset = int(p.Epoch.Month()) - 1
		}
		for x := 0; x < cycle/period; x++ {
			v := (x*period + offset) % cycle
			if f == fieldMonths {
				v++
			}
			fixed.add(v)
		}
	default:
		*periods = append(*periods, period)
	}
}

// splitColumns splits off up to n whitespace-separated fields; the
// remainder of the line, if any, is returned as a comment.
func splitColumns(text string, n int) (columns []string, comment string) {
	for len(columns) < n {
		text = strings.TrimLeft(text, " \t")
		if text == "" {
			break
		}
		i := strings.IndexAny(text, " \t")
		if i < 0 {
			columns = append(columns, text)
			text = ""
			break
		}
		columns = append(columns, text[:i])
		text = text[i:]
	}
	return columns, strings.TrimSpace(text)
}

// Equal reports whether two expressions compile to the same
// constraint sets. Text that differs only in spelling compares equal:
// "*/30 0,8,16 * * SUN,WED" equals "0,30 0-16/8 * * 0,3".
func (e *Expression) Equal(o *Expression) bool {
	for f := fieldSeconds; f < numFields; f++ {
		if !e.fixed[f].equal(o.fixed[f]) {
			return false
		}
		if len(e.monotonic[f]) != len(o.monotonic[f]) {
			return false
		}
		for i := range e.monotonic[f] {
			if e.monotonic[f][i] != o.monotonic[f][i] {
				return false
			}
		}
	}
	return e.annotations.equal(o.annotations)
}
