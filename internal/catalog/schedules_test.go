package catalog_test

import (
	"context"
	"errors"
	"testing"

	"registrar/internal/catalog"
)

func sampleSchedule() catalog.Schedule {
	return catalog.Schedule{
		DayCount:     5,
		WorkingDays:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		StartingTime: "08:30",
		Duration:     "1h",
		WorkingTime:  "8h",
	}
}

func TestAddScheduleRoundTrip(t *testing.T) {
	schedules := catalog.NewSchedules(openStore(t))
	ctx := context.Background()

	added, err := schedules.Add(ctx, sampleSchedule())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected store-assigned id")
	}

	listed, err := schedules.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one schedule, got %d", len(listed))
	}
	got := listed[0]
	if got.DayCount != 5 || got.StartingTime != "08:30" {
		t.Fatalf("fields not preserved: %#v", got)
	}
	if len(got.WorkingDays) != 5 || got.WorkingDays[0] != "Monday" || got.WorkingDays[4] != "Friday" {
		t.Fatalf("working days order not preserved: %#v", got.WorkingDays)
	}
}

func TestAddScheduleRejectsNegativeDayCount(t *testing.T) {
	schedules := catalog.NewSchedules(openStore(t))

	schedule := sampleSchedule()
	schedule.DayCount = -1
	_, err := schedules.Add(context.Background(), schedule)
	if !errors.Is(err, catalog.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestSearchSchedules(t *testing.T) {
	schedules := catalog.NewSchedules(openStore(t))
	ctx := context.Background()

	if _, err := schedules.Add(ctx, sampleSchedule()); err != nil {
		t.Fatalf("Add weekday schedule: %v", err)
	}
	weekend := catalog.Schedule{
		DayCount:     2,
		WorkingDays:  []string{"Saturday", "Sunday"},
		StartingTime: "09:00",
		Duration:     "2h",
		WorkingTime:  "6h",
	}
	if _, err := schedules.Add(ctx, weekend); err != nil {
		t.Fatalf("Add weekend schedule: %v", err)
	}

	found, err := schedules.Search(ctx, "saturday")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 || found[0].DayCount != 2 {
		t.Fatalf("unexpected match: %#v", found)
	}

	none, err := schedules.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search blank: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("blank keyword must match nothing, got %#v", none)
	}
}

func TestEditAndDeleteSchedule(t *testing.T) {
	schedules := catalog.NewSchedules(openStore(t))
	ctx := context.Background()

	added, err := schedules.Add(ctx, sampleSchedule())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	updated := *added
	updated.DayCount = 6
	updated.WorkingDays = append(updated.WorkingDays, "Saturday")
	if err := schedules.Edit(ctx, updated); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	listed, err := schedules.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if listed[0].DayCount != 6 || len(listed[0].WorkingDays) != 6 {
		t.Fatalf("edit not persisted: %#v", listed[0])
	}

	if err := schedules.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := schedules.Delete(ctx, added.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := schedules.Edit(ctx, updated); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound editing deleted schedule, got %v", err)
	}
}
