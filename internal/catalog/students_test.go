package catalog_test

import (
	"context"
	"errors"
	"testing"

	"registrar/internal/catalog"
)

func TestAddStudentRoundTrip(t *testing.T) {
	students := catalog.NewStudents(openStore(t))
	ctx := context.Background()

	added, err := students.Add(ctx, catalog.Student{
		Year:          2,
		Semester:      1,
		Programme:     "Software Engineering",
		Group:         "01",
		SubGroup:      "1",
		GroupLabel:    "Y2.S1.01",
		SubGroupLabel: "Y2.S1.01.1",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected store-assigned id")
	}

	listed, err := students.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one student record, got %d", len(listed))
	}
	got := listed[0]
	if got.Programme != "Software Engineering" || got.GroupLabel != "Y2.S1.01" || got.SubGroupLabel != "Y2.S1.01.1" {
		t.Fatalf("fields not preserved: %#v", got)
	}
}

func TestAddSubGroupDuplicateCode(t *testing.T) {
	students := catalog.NewStudents(openStore(t))
	ctx := context.Background()

	if _, err := students.AddSubGroup(ctx, "Y1.S1.01.1", nil); err != nil {
		t.Fatalf("first AddSubGroup: %v", err)
	}
	_, err := students.AddSubGroup(ctx, "Y1.S1.01.1", nil)
	if !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestSubGroupUnavailabilityNullPreserved(t *testing.T) {
	students := catalog.NewStudents(openStore(t))
	ctx := context.Background()

	added, err := students.AddSubGroup(ctx, "Y1.S1.01.1", nil)
	if err != nil {
		t.Fatalf("AddSubGroup: %v", err)
	}
	if added.UnavailableHours != nil {
		t.Fatalf("expected nil hours before assignment, got %#v", added.UnavailableHours)
	}

	hours := map[string]catalog.TimeRange{
		"0": {Day: "Monday", From: "08:30", To: "10:30"},
		"1": {Day: "Friday", From: "13:00", To: "15:00"},
	}
	if err := students.SetUnavailability(ctx, added.ID, hours); err != nil {
		t.Fatalf("SetUnavailability: %v", err)
	}

	groups, err := students.SubGroups(ctx)
	if err != nil {
		t.Fatalf("SubGroups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected one subgroup, got %d", len(groups))
	}
	got := groups[0].UnavailableHours
	if len(got) != 2 || got["0"].Day != "Monday" || got["1"].To != "15:00" {
		t.Fatalf("hours not preserved: %#v", got)
	}

	// Clearing stores NULL again, not an empty map.
	if err := students.SetUnavailability(ctx, added.ID, nil); err != nil {
		t.Fatalf("SetUnavailability clear: %v", err)
	}
	groups, err = students.SubGroups(ctx)
	if err != nil {
		t.Fatalf("SubGroups after clear: %v", err)
	}
	if groups[0].UnavailableHours != nil {
		t.Fatalf("expected nil hours after clear, got %#v", groups[0].UnavailableHours)
	}
}

func TestSetUnavailabilityUnknownSubGroup(t *testing.T) {
	students := catalog.NewStudents(openStore(t))

	err := students.SetUnavailability(context.Background(), "missing", nil)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
