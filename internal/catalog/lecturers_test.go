package catalog_test

import (
	"context"
	"errors"
	"testing"

	"registrar/internal/catalog"
)

func sampleLecturer() catalog.Lecturer {
	return catalog.Lecturer{
		EmployeeID: "E1001",
		Name:       "Dr. Silva",
		Faculty:    "Computing",
		Department: "Software Engineering",
		Center:     "Main Campus",
		Building:   "A1",
		Level:      "Senior",
		Rank:       "professor",
	}
}

func TestAddLecturerRoundTrip(t *testing.T) {
	lecturers := catalog.NewLecturers(openStore(t))
	ctx := context.Background()

	added, err := lecturers.Add(ctx, sampleLecturer())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected store-assigned id")
	}

	listed, err := lecturers.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected one lecturer, got %d", len(listed))
	}
	got := listed[0]
	want := sampleLecturer()
	if got.EmployeeID != want.EmployeeID || got.Name != want.Name ||
		got.Faculty != want.Faculty || got.Department != want.Department ||
		got.Center != want.Center || got.Building != want.Building ||
		got.Level != want.Level || got.Rank != want.Rank {
		t.Fatalf("fields not preserved: %#v", got)
	}
}

func TestAddLecturerDuplicateEmployeeID(t *testing.T) {
	lecturers := catalog.NewLecturers(openStore(t))
	ctx := context.Background()

	if _, err := lecturers.Add(ctx, sampleLecturer()); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	other := sampleLecturer()
	other.Name = "Someone Else"
	_, err := lecturers.Add(ctx, other)
	if !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestEditLecturerEmployeeIDUniqueness(t *testing.T) {
	lecturers := catalog.NewLecturers(openStore(t))
	ctx := context.Background()

	first, err := lecturers.Add(ctx, sampleLecturer())
	if err != nil {
		t.Fatalf("Add first: %v", err)
	}
	second := sampleLecturer()
	second.EmployeeID = "E1002"
	other, err := lecturers.Add(ctx, second)
	if err != nil {
		t.Fatalf("Add second: %v", err)
	}

	// Re-saving with the same employee id succeeds.
	renamed := *first
	renamed.Name = "Dr. N. Silva"
	if err := lecturers.Edit(ctx, renamed); err != nil {
		t.Fatalf("Edit keeping employee id: %v", err)
	}

	stolen := *other
	stolen.EmployeeID = first.EmployeeID
	if err := lecturers.Edit(ctx, stolen); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for stolen employee id, got %v", err)
	}
}

func TestDeleteLecturerLeavesSessionSnapshots(t *testing.T) {
	st := openStore(t)
	lecturers := catalog.NewLecturers(st)
	sessions := catalog.NewSessions(st)
	ctx := context.Background()

	added, err := lecturers.Add(ctx, sampleLecturer())
	if err != nil {
		t.Fatalf("Add lecturer: %v", err)
	}
	if _, err := sessions.Add(ctx, catalog.Session{
		LecturerNames: []string{"Dr. Silva"},
		SubjectCode:   "CS101",
		StudentCount:  60,
		Duration:      2,
	}); err != nil {
		t.Fatalf("Add session: %v", err)
	}

	if err := lecturers.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Delete lecturer: %v", err)
	}

	remaining, err := sessions.List(ctx)
	if err != nil {
		t.Fatalf("List sessions: %v", err)
	}
	if len(remaining) != 1 || remaining[0].LecturerNames[0] != "Dr. Silva" {
		t.Fatalf("session snapshot must survive lecturer deletion: %#v", remaining)
	}
}
