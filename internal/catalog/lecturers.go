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

// Lecturers is the access module for the Lecturer family, keyed on the
// university employee id.
type Lecturers struct {
	db *sql.DB
}

// NewLecturers binds the module to the shared store handle.
func NewLecturers(st *store.Store) *Lecturers {
	return &Lecturers{db: st.DB()}
}

const lecturerColumns = "id, employee_id, name, faculty, department, center, building, level, rank, created_at, updated_at"

// List returns every lecturer ordered by creation time.
func (l *Lecturers) List(ctx context.Context) ([]Lecturer, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT `+lecturerColumns+` FROM lecturers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list lecturers: %w", err)
	}
	defer rows.Close()

	var lecturers []Lecturer
	for rows.Next() {
		lecturer, err := scanLecturer(rows)
		if err != nil {
			return nil, err
		}
		lecturers = append(lecturers, lecturer)
	}
	return lecturers, rows.Err()
}

// Add inserts a lecturer. The employee id must be unused.
func (l *Lecturers) Add(ctx context.Context, lecturer Lecturer) (*Lecturer, error) {
	if err := validateLecturer(&lecturer); err != nil {
		return nil, err
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO lecturers (id, employee_id, name, faculty, department, center, building, level, rank, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, lecturer.EmployeeID, lecturer.Name, lecturer.Faculty, lecturer.Department,
		lecturer.Center, lecturer.Building, lecturer.Level, lecturer.Rank,
		now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("employee id %q: %w", lecturer.EmployeeID, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert lecturer: %w", err)
	}
	return l.byID(ctx, id)
}

// Edit updates the lecturer identified by lecturer.ID, re-applying the
// uniqueness rule against all records except the edited one.
func (l *Lecturers) Edit(ctx context.Context, lecturer Lecturer) error {
	if err := validateLecturer(&lecturer); err != nil {
		return err
	}

	res, err := l.db.ExecContext(
		ctx,
		`UPDATE lecturers
         SET employee_id = ?, name = ?, faculty = ?, department = ?, center = ?, building = ?, level = ?, rank = ?, updated_at = ?
         WHERE id = ?`,
		lecturer.EmployeeID, lecturer.Name, lecturer.Faculty, lecturer.Department,
		lecturer.Center, lecturer.Building, lecturer.Level, lecturer.Rank,
		timestamp(time.Now()), lecturer.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee id %q: %w", lecturer.EmployeeID, ErrDuplicate)
		}
		return fmt.Errorf("update lecturer: %w", err)
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

// Delete removes a lecturer by identifier. Existing sessions keep their
// lecturer-name snapshots.
func (l *Lecturers) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, l.db, `DELETE FROM lecturers WHERE id = ?`, id)
}

func (l *Lecturers) byID(ctx context.Context, id string) (*Lecturer, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+lecturerColumns+` FROM lecturers WHERE id = ?`, id)
	lecturer, err := scanLecturer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lecturer: %w", err)
	}
	return &lecturer, nil
}

func validateLecturer(lecturer *Lecturer) error {
	lecturer.EmployeeID = strings.TrimSpace(lecturer.EmployeeID)
	if lecturer.EmployeeID == "" {
		return fmt.Errorf("%w: employee id is required", ErrInvalid)
	}
	return nil
}

func scanLecturer(scanner rowScanner) (Lecturer, error) {
	var (
		lecturer   Lecturer
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&lecturer.ID, &lecturer.EmployeeID, &lecturer.Name, &lecturer.Faculty, &lecturer.Department,
		&lecturer.Center, &lecturer.Building, &lecturer.Level, &lecturer.Rank,
		&createdRaw, &updatedRaw,
	); err != nil {
		return Lecturer{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		lecturer.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		lecturer.UpdatedAt = updated
	}
	return lecturer, nil
}
