package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"lesiw.io/cronex"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	expr, err := cronex.Parse("0 9 * * MON-FRI weekday stand-up")
	if err != nil {
		return fmt.Errorf("could not compile expression: %w", err)
	}
	slog.Info("compiled", "comment", expr.Comment)

	// The engine only answers point-in-time queries; walking the
	// clock is the caller's job.
	t := time.Now().Truncate(time.Minute)
	for found := 0; found < 5; t = t.Add(time.Minute) {
		if expr.Matches(t) {
			slog.Info("fires", "at", t.Format(time.RFC1123))
			found++
		}
	}
	return nil
}
