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

// Schedules is the access module for working-week templates. The family has
// no natural key; it is a plain keyed store with search over its fields.
type Schedules struct {
	db *sql.DB
}

// NewSchedules binds the module to the shared store handle.
func NewSchedules(st *store.Store) *Schedules {
	return &Schedules{db: st.DB()}
}

const scheduleColumns = "id, day_count, working_days, starting_time, duration, working_time, created_at, updated_at"

// List returns every schedule template ordered by creation time.
func (s *Schedules) List(ctx context.Context) ([]Schedule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

// Add inserts a schedule template.
func (s *Schedules) Add(ctx context.Context, schedule Schedule) (*Schedule, error) {
	if err := validateSchedule(&schedule); err != nil {
		return nil, err
	}
	days, err := marshalStrings(schedule.WorkingDays)
	if err != nil {
		return nil, err
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO schedules (id, day_count, working_days, starting_time, duration, working_time, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, schedule.DayCount, days, schedule.StartingTime, schedule.Duration, schedule.WorkingTime,
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	return s.byID(ctx, id)
}

// Search performs a case-insensitive keyword match over the template's text
// fields. An empty keyword matches nothing.
func (s *Schedules) Search(ctx context.Context, keyword string) ([]Schedule, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE ` +
		keywordMatch("working_days", "starting_time", "duration", "working_time") + ` ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("search schedules: %w", err)
	}
	defer rows.Close()
	return collectSchedules(rows)
}

// Edit updates the template identified by schedule.ID.
func (s *Schedules) Edit(ctx context.Context, schedule Schedule) error {
	if err := validateSchedule(&schedule); err != nil {
		return err
	}
	days, err := marshalStrings(schedule.WorkingDays)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE schedules
         SET day_count = ?, working_days = ?, starting_time = ?, duration = ?, working_time = ?, updated_at = ?
         WHERE id = ?`,
		schedule.DayCount, days, schedule.StartingTime, schedule.Duration, schedule.WorkingTime,
		timestamp(time.Now()), schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
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

// Delete removes a schedule template by identifier.
func (s *Schedules) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, `DELETE FROM schedules WHERE id = ?`, id)
}

func (s *Schedules) byID(ctx context.Context, id string) (*Schedule, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = ?`, id)
	schedule, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return &schedule, nil
}

func validateSchedule(schedule *Schedule) error {
	if schedule.DayCount < 0 {
		return fmt.Errorf("%w: day count must not be negative", ErrInvalid)
	}
	return nil
}

func scanSchedule(scanner rowScanner) (Schedule, error) {
	var (
		schedule   Schedule
		daysRaw    string
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&schedule.ID, &schedule.DayCount, &daysRaw, &schedule.StartingTime, &schedule.Duration, &schedule.WorkingTime,
		&createdRaw, &updatedRaw,
	); err != nil {
		return Schedule{}, err
	}
	days, err := unmarshalStrings(daysRaw)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule working days: %w", err)
	}
	schedule.WorkingDays = days
	if created, err := parseTimeString(createdRaw); err == nil {
		schedule.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		schedule.UpdatedAt = updated
	}
	return schedule, nil
}

func collectSchedules(rows *sql.Rows) ([]Schedule, error) {
	var schedules []Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}
