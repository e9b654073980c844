package catalog_test

import (
	"context"
	"errors"
	"testing"

	"registrar/internal/catalog"
)

func sampleSession() catalog.Session {
	return catalog.Session{
		LecturerNames: []string{"Dr. Silva", "Ms. Perera"},
		Tag:           "Lecture",
		SubjectName:   "Data Structures",
		SubjectCode:   "CS201",
		GroupID:       "Y2.S1.01",
		StudentCount:  120,
		Duration:      2,
	}
}

func TestAddSessionStandalone(t *testing.T) {
	// Sessions carry denormalized lecturer and subject values, so one must be
	// addable without any lecturer or group existing in the catalog.
	sessions := catalog.NewSessions(openStore(t))
	ctx := context.Background()

	added, err := sessions.Add(ctx, sampleSession())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if len(added.LecturerNames) != 2 || added.LecturerNames[0] != "Dr. Silva" {
		t.Fatalf("lecturer order not preserved: %#v", added.LecturerNames)
	}
}

func TestAddSessionValidation(t *testing.T) {
	sessions := catalog.NewSessions(openStore(t))
	ctx := context.Background()

	zeroStudents := sampleSession()
	zeroStudents.StudentCount = 0
	if _, err := sessions.Add(ctx, zeroStudents); !errors.Is(err, catalog.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero students, got %v", err)
	}

	zeroDuration := sampleSession()
	zeroDuration.Duration = 0
	if _, err := sessions.Add(ctx, zeroDuration); !errors.Is(err, catalog.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero duration, got %v", err)
	}
}

func TestSearchSessionsAcrossFields(t *testing.T) {
	sessions := catalog.NewSessions(openStore(t))
	ctx := context.Background()

	if _, err := sessions.Add(ctx, sampleSession()); err != nil {
		t.Fatalf("Add first: %v", err)
	}
	other := sampleSession()
	other.LecturerNames = []string{"Mr. Fernando"}
	other.SubjectCode = "CS305"
	other.SubjectName = "Databases"
	other.Tag = "Tutorial"
	if _, err := sessions.Add(ctx, other); err != nil {
		t.Fatalf("Add second: %v", err)
	}

	byLecturer, err := sessions.Search(ctx, "silva")
	if err != nil {
		t.Fatalf("Search lecturer: %v", err)
	}
	if len(byLecturer) != 1 || byLecturer[0].SubjectCode != "CS201" {
		t.Fatalf("unexpected lecturer match: %#v", byLecturer)
	}

	byTag, err := sessions.Search(ctx, "tutorial")
	if err != nil {
		t.Fatalf("Search tag: %v", err)
	}
	if len(byTag) != 1 || byTag[0].SubjectCode != "CS305" {
		t.Fatalf("unexpected tag match: %#v", byTag)
	}

	byCode, err := sessions.Search(ctx, "cs")
	if err != nil {
		t.Fatalf("Search code: %v", err)
	}
	if len(byCode) != 2 {
		t.Fatalf("expected both sessions for shared prefix, got %#v", byCode)
	}
}

func TestSessionSurvivesLecturerRename(t *testing.T) {
	st := openStore(t)
	sessions := catalog.NewSessions(st)
	lecturers := catalog.NewLecturers(st)
	ctx := context.Background()

	lecturer, err := lecturers.Add(ctx, catalog.Lecturer{EmployeeID: "E1001", Name: "Dr. Silva"})
	if err != nil {
		t.Fatalf("Add lecturer: %v", err)
	}
	if _, err := sessions.Add(ctx, sampleSession()); err != nil {
		t.Fatalf("Add session: %v", err)
	}

	renamed := *lecturer
	renamed.Name = "Dr. S. de Silva"
	if err := lecturers.Edit(ctx, renamed); err != nil {
		t.Fatalf("Edit lecturer: %v", err)
	}

	found, err := sessions.Search(ctx, "Dr. Silva")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("session snapshot must keep the name it was created with: %#v", found)
	}
}

func TestDeleteSession(t *testing.T) {
	sessions := catalog.NewSessions(openStore(t))
	ctx := context.Background()

	added, err := sessions.Add(ctx, sampleSession())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := sessions.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := sessions.Delete(ctx, added.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTagsUniqueByName(t *testing.T) {
	sessions := catalog.NewSessions(openStore(t))
	ctx := context.Background()

	tag, err := sessions.AddTag(ctx, "Lecture")
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if _, err := sessions.AddTag(ctx, "Lecture"); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	tags, err := sessions.Tags(ctx)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "Lecture" {
		t.Fatalf("unexpected tags: %#v", tags)
	}

	if err := sessions.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("DeleteTag: %v", err)
	}
	if err := sessions.DeleteTag(ctx, tag.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
