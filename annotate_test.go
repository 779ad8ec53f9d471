package cronex

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var annOpts = cmp.AllowUnexported(annotation{})

func TestWeekdayAgreesWithTime(t *testing.T) {
	// The closed-form weekday and the standard library implement the
	// Gregorian calendar independently; sweep a century of dates.
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2071; d = d.AddDate(0, 0, 13) {
		year, month, day := d.Date()

		got, want := weekday(year, int(month), day), int(d.Weekday())

		if got != want {
			t.Fatalf("weekday(%d, %d, %d) = %d, want %d",
				year, month, day, got, want)
		}
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2010, 1, 31},
		{2010, 2, 28},
		{2012, 2, 29},
		{2000, 2, 29},
		{1900, 2, 28},
		{2010, 4, 30},
		{2010, 11, 30},
		{2010, 12, 31},
	}
	for _, tt := range tests {
		got := lastDayOfMonth(tt.year, tt.month)

		if got != tt.want {
			t.Errorf("lastDayOfMonth(%d, %d) = %d, want %d",
				tt.year, tt.month, got, tt.want)
		}
	}
}

func TestAnnotateLastFriday(t *testing.T) {
	// 2010-01-29 is the last Friday of a 31-day month that closes on
	// a Sunday, so the Friday also stands in for the 30th and 31st.
	got := annotate(2010, 1, 29)

	want := annotationSet{
		{annDaysToMonthEnd, 2, 0}:  {},
		{annNthWeekday, 5, 5}:      {},
		{annDayOfWeek, 5, 0}:       {},
		{annLastWeekday, 5, 0}:     {},
		{annNearestWeekday, 29, 0}: {},
		{annNearestWeekday, 30, 0}: {},
		{annNearestWeekday, 31, 0}: {},
	}
	if !cmp.Equal(got, want, annOpts) {
		t.Errorf("annotate(2010, 1, 29) -want +got\n%s",
			cmp.Diff(want, got, annOpts))
	}
}

func TestAnnotateSaturday(t *testing.T) {
	// Weekend days carry no nearest-weekday annotations at all.
	got := annotate(2010, 8, 7)

	want := annotationSet{
		{annDaysToMonthEnd, 24, 0}: {},
		{annNthWeekday, 6, 1}:      {},
		{annDayOfWeek, 6, 0}:       {},
	}
	if !cmp.Equal(got, want, annOpts) {
		t.Errorf("annotate(2010, 8, 7) -want +got\n%s",
			cmp.Diff(want, got, annOpts))
	}
}

func TestAnnotateMonthOpensOnSaturday(t *testing.T) {
	// May 2010 starts on a Saturday, so Monday the 3rd is the
	// nearest weekday to both the 1st and the 2nd.
	got := annotate(2010, 5, 3)

	want := annotationSet{
		{annDaysToMonthEnd, 28, 0}: {},
		{annNthWeekday, 1, 1}:      {},
		{annDayOfWeek, 1, 0}:       {},
		{annNearestWeekday, 3, 0}:  {},
		{annNearestWeekday, 2, 0}:  {},
		{annNearestWeekday, 1, 0}:  {},
	}
	if !cmp.Equal(got, want, annOpts) {
		t.Errorf("annotate(2010, 5, 3) -want +got\n%s",
			cmp.Diff(want, got, annOpts))
	}
}

func TestAnnotateMonthClosesOnSunday(t *testing.T) {
	// October 2010 ends on a Sunday, so Friday the 29th is the
	// nearest weekday to the 30th and the 31st.
	got := annotate(2010, 10, 29)

	want := annotationSet{
		{annDaysToMonthEnd, 2, 0}:  {},
		{annNthWeekday, 5, 5}:      {},
		{annDayOfWeek, 5, 0}:       {},
		{annLastWeekday, 5, 0}:     {},
		{annNearestWeekday, 29, 0}: {},
		{annNearestWeekday, 30, 0}: {},
		{annNearestWeekday, 31, 0}: {},
	}
	if !cmp.Equal(got, want, annOpts) {
		t.Errorf("annotate(2010, 10, 29) -want +got\n%s",
			cmp.Diff(want, got, annOpts))
	}
}

func TestAnnotateOrdinalOccurrence(t *testing.T) {
	// Days 7, 14, 21, and 28 close out their weeks: day 7 is still
	// the first occurrence of its weekday.
	tests := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3},
		{21, 3}, {22, 4}, {28, 4}, {29, 5},
	}
	for _, tt := range tests {
		dow := weekday(2010, 6, tt.day)

		set := annotate(2010, 6, tt.day)

		if _, ok := set[annotation{annNthWeekday, dow, tt.want}]; !ok {
			t.Errorf("annotate(2010, 6, %d) lacks occurrence %d of"+
				" weekday %d", tt.day, tt.want, dow)
		}
	}
}
