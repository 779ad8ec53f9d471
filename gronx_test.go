package cronex

import (
	"testing"
	"time"

	"github.com/adhocore/gronx"
)

// TestGronxAgreement cross-checks plain fixed expressions against an
// independent cron engine. Constructs gronx lacks (monotonic periods,
// annotations, the dom/dow OR rule) are excluded; one of the two day
// fields is always unrestricted.
func TestGronxAgreement(t *testing.T) {
	exprs := []string{
		"* * * * *",
		"*/5 * * * *",
		"0 0 * * *",
		"30 14 * * 1",
		"15 10 1 * *",
		"0 12 1-15 * *",
		"0,30 */6 * * *",
		"45 8-17 * 3 *",
	}
	gron := gronx.New()

	// Two full days at minute resolution: a Monday mid-month and the
	// first of the next month.
	days := []time.Time{
		time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, text := range exprs {
		e := mustParse(t, Parser{}, text)
		for _, day := range days {
			for m := 0; m < 24*60; m++ {
				ref := day.Add(time.Duration(m) * time.Minute)

				want, err := gron.IsDue(text, ref)
				if err != nil {
					t.Fatalf("gronx.IsDue(%q, %v) = _, %q",
						text, ref, err)
				}
				got := e.Matches(ref)

				if got != want {
					t.Errorf("Matches(%q, %v) = %t, gronx says %t",
						text, ref, got, want)
				}
			}
		}
	}
}
