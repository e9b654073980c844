package main

import (
	"testing"

	"registrar/internal/ipc"
)

func TestParseBlock(t *testing.T) {
	tr, err := parseBlock("Monday 08:30-10:30")
	if err != nil {
		t.Fatalf("parseBlock: %v", err)
	}
	if tr.Day != "Monday" || tr.From != "08:30" || tr.To != "10:30" {
		t.Fatalf("unexpected block: %#v", tr)
	}

	for _, bad := range []string{"", "Monday", "Monday 08:30", "Monday -10:30"} {
		if _, err := parseBlock(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFormatUnavailableHours(t *testing.T) {
	if got := formatUnavailableHours(nil); got != "-" {
		t.Fatalf("expected placeholder for nil hours, got %q", got)
	}
	got := formatUnavailableHours(map[string]ipc.TimeRange{
		"1": {Day: "Tuesday", From: "13:00", To: "15:00"},
		"0": {Day: "Monday", From: "08:30", To: "10:30"},
	})
	if got != "Monday 08:30-10:30; Tuesday 13:00-15:00" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}
