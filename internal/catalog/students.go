package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"registrar/internal/store"
)

// Students is the access module for the Student read projection and the
// SubGroup family.
type Students struct {
	db *sql.DB
}

// NewStudents binds the module to the shared store handle.
func NewStudents(st *store.Store) *Students {
	return &Students{db: st.DB()}
}

const studentColumns = "id, year, semester, programme, group_name, subgroup, group_label, subgroup_label, created_at, updated_at"

// List returns every student record ordered by creation time. The records
// are a read-mostly projection used to populate group pickers.
func (s *Students) List(ctx context.Context) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+studentColumns+` FROM students ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Add inserts a student projection record.
func (s *Students) Add(ctx context.Context, student Student) (*Student, error) {
	id := store.NewID()
	now := timestamp(time.Now())
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO students (id, year, semester, programme, group_name, subgroup, group_label, subgroup_label, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, student.Year, student.Semester, student.Programme, student.Group, student.SubGroup,
		student.GroupLabel, student.SubGroupLabel,
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	inserted, err := scanStudent(row)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &inserted, nil
}

const subGroupColumns = "id, code, unavailable_hours, created_at, updated_at"

// SubGroups returns every subgroup ordered by creation time.
func (s *Students) SubGroups(ctx context.Context) ([]SubGroup, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+subGroupColumns+` FROM subgroups ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list subgroups: %w", err)
	}
	defer rows.Close()

	var subGroups []SubGroup
	for rows.Next() {
		subGroup, err := scanSubGroup(rows)
		if err != nil {
			return nil, err
		}
		subGroups = append(subGroups, subGroup)
	}
	return subGroups, rows.Err()
}

// AddSubGroup inserts a subgroup. The code must be unused. A nil hours map is
// stored as NULL and stays nil on read; no empty-map substitution happens.
func (s *Students) AddSubGroup(ctx context.Context, code string, hours map[string]TimeRange) (*SubGroup, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: subgroup code is required", ErrInvalid)
	}
	hoursValue, err := marshalHours(hours)
	if err != nil {
		return nil, err
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO subgroups (id, code, unavailable_hours, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, code, hoursValue, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("subgroup code %q: %w", code, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert subgroup: %w", err)
	}
	return s.subGroupByID(ctx, id)
}

// SetUnavailability replaces the unavailable-hours map of the subgroup
// identified by id. Passing nil clears it back to NULL.
func (s *Students) SetUnavailability(ctx context.Context, id string, hours map[string]TimeRange) error {
	hoursValue, err := marshalHours(hours)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE subgroups SET unavailable_hours = ?, updated_at = ? WHERE id = ?`,
		hoursValue, timestamp(time.Now()), id,
	)
	if err != nil {
		return fmt.Errorf("update subgroup: %w", err)
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

func (s *Students) subGroupByID(ctx context.Context, id string) (*SubGroup, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+subGroupColumns+` FROM subgroups WHERE id = ?`, id)
	subGroup, err := scanSubGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subgroup: %w", err)
	}
	return &subGroup, nil
}

func marshalHours(hours map[string]TimeRange) (any, error) {
	if hours == nil {
		return nil, nil
	}
	data, err := json.Marshal(hours)
	if err != nil {
		return nil, fmt.Errorf("marshal unavailable hours: %w", err)
	}
	return string(data), nil
}

func scanStudent(scanner rowScanner) (Student, error) {
	var (
		student    Student
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&student.ID, &student.Year, &student.Semester, &student.Programme, &student.Group, &student.SubGroup,
		&student.GroupLabel, &student.SubGroupLabel,
		&createdRaw, &updatedRaw,
	); err != nil {
		return Student{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		student.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		student.UpdatedAt = updated
	}
	return student, nil
}

func scanSubGroup(scanner rowScanner) (SubGroup, error) {
	var (
		subGroup   SubGroup
		hoursRaw   sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&subGroup.ID, &subGroup.Code, &hoursRaw, &createdRaw, &updatedRaw); err != nil {
		return SubGroup{}, err
	}
	if hoursRaw.Valid {
		var hours map[string]TimeRange
		if err := json.Unmarshal([]byte(hoursRaw.String), &hours); err != nil {
			return SubGroup{}, fmt.Errorf("unmarshal unavailable hours: %w", err)
		}
		subGroup.UnavailableHours = hours
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		subGroup.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		subGroup.UpdatedAt = updated
	}
	return subGroup, nil
}
