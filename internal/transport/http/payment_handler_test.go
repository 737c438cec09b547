package http

import (
	"testing"
	"time"
)

func TestParseDeadlineDateOnly(t *testing.T) {
	deadline, err := parseDeadline(" 2026-04-15 ", time.UTC)
	if err != nil {
		t.Fatalf("parseDeadline returned error: %v", err)
	}
	want := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Fatalf("expected %v, got %v", want, deadline)
	}
}

func TestParseDeadlineDateOnlyUsesReminderTimezone(t *testing.T) {
	// Payments are swept to overdue when deadline < start of today in the
	// reminder timezone. A date-only deadline must land at that zone's
	// midnight so it never sorts before the start of its own due day.
	loc := time.FixedZone("EST", -5*3600)
	deadline, err := parseDeadline("2026-04-15", loc)
	if err != nil {
		t.Fatalf("parseDeadline returned error: %v", err)
	}
	want := time.Date(2026, 4, 15, 0, 0, 0, 0, loc)
	if !deadline.Equal(want) {
		t.Fatalf("expected %v, got %v", want, deadline)
	}
	startOfDueDay := time.Date(2026, 4, 15, 0, 0, 0, 0, loc)
	if deadline.Before(startOfDueDay) {
		t.Fatalf("deadline %v precedes start of its own due day %v", deadline, startOfDueDay)
	}
}

func TestParseDeadlineRFC3339(t *testing.T) {
	deadline, err := parseDeadline("2026-04-15T18:30:00Z", time.UTC)
	if err != nil {
		t.Fatalf("parseDeadline returned error: %v", err)
	}
	if deadline.Hour() != 18 || deadline.Minute() != 30 {
		t.Fatalf("expected timestamp to be preserved, got %v", deadline)
	}
}

func TestParseDeadlineInvalid(t *testing.T) {
	if _, err := parseDeadline("next tuesday", time.UTC); err == nil {
		t.Fatalf("expected error for unparseable deadline")
	}
	if _, err := parseDeadline("15/04/2026", time.UTC); err == nil {
		t.Fatalf("expected error for non-ISO date format")
	}
}
