package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"registrar/internal/store"
)

// Subjects is the access module for the Subject family.
type Subjects struct {
	db *sql.DB
}

// NewSubjects binds the module to the shared store handle.
func NewSubjects(st *store.Store) *Subjects {
	return &Subjects{db: st.DB()}
}

const subjectColumns = "id, code, year, semester, name, lecture_hours, tutorial_hours, lab_hours, eval_hours, created_at, updated_at"

// List returns every subject ordered by creation time.
func (s *Subjects) List(ctx context.Context) ([]Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+subjectColumns+` FROM subjects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// Add inserts a subject. The subject code must be unused and hour counts must
// not be negative; no cross-field rule is applied beyond that.
func (s *Subjects) Add(ctx context.Context, subject Subject) (*Subject, error) {
	if err := validateSubject(&subject); err != nil {
		return nil, err
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO subjects (id, code, year, semester, name, lecture_hours, tutorial_hours, lab_hours, eval_hours, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, subject.Code, subject.Year, subject.Semester, subject.Name,
		subject.LectureHours, subject.TutorialHours, subject.LabHours, subject.EvalHours,
		now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("subject code %q: %w", subject.Code, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert subject: %w", err)
	}
	return s.byID(ctx, id)
}

// Edit updates the subject identified by subject.ID, re-applying the
// uniqueness rule against all records except the edited one.
func (s *Subjects) Edit(ctx context.Context, subject Subject) error {
	if err := validateSubject(&subject); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE subjects
         SET code = ?, year = ?, semester = ?, name = ?, lecture_hours = ?, tutorial_hours = ?, lab_hours = ?, eval_hours = ?, updated_at = ?
         WHERE id = ?`,
		subject.Code, subject.Year, subject.Semester, subject.Name,
		subject.LectureHours, subject.TutorialHours, subject.LabHours, subject.EvalHours,
		timestamp(time.Now()), subject.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("subject code %q: %w", subject.Code, ErrDuplicate)
		}
		return fmt.Errorf("update subject: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a subject by identifier.
func (s *Subjects) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, `DELETE FROM subjects WHERE id = ?`, id)
}

func (s *Subjects) byID(ctx context.Context, id string) (*Subject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = ?`, id)
	subject, err := scanSubject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return &subject, nil
}

func validateSubject(subject *Subject) error {
	subject.Code = strings.TrimSpace(subject.Code)
	if subject.Code == "" {
		return fmt.Errorf("%w: subject code is required", ErrInvalid)
	}
	for _, hours := range []int{subject.LectureHours, subject.TutorialHours, subject.LabHours, subject.EvalHours} {
		if hours < 0 {
			return fmt.Errorf("%w: hour counts must not be negative", ErrInvalid)
		}
	}
	return nil
}

func scanSubject(scanner rowScanner) (Subject, error) {
	var (
		subject    Subject
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&subject.ID, &subject.Code, &subject.Year, &subject.Semester, &subject.Name,
		&subject.LectureHours, &subject.TutorialHours, &subject.LabHours, &subject.EvalHours,
		&createdRaw, &updatedRaw,
	); err != nil {
		return Subject{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		subject.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		subject.UpdatedAt = updated
	}
	return subject, nil
}
