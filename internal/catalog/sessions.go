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

// Sessions is the access module for the Session and Tag families.
//
// A session stores its lecturer names as an ordered snapshot taken at add
// time. The snapshot is deliberate denormalization: sessions must remain
// valid presentation data even when lecturers are renamed or removed, so no
// reference check is applied to lecturer names, subject codes, or group
// identifiers here.
type Sessions struct {
	db *sql.DB
}

// NewSessions binds the module to the shared store handle.
func NewSessions(st *store.Store) *Sessions {
	return &Sessions{db: st.DB()}
}

const sessionColumns = "id, lecturer_names, tag, subject_name, subject_code, group_id, student_count, duration, created_at, updated_at"

// List returns every session ordered by creation time.
func (s *Sessions) List(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// Add inserts a session. Student count and duration must be positive.
func (s *Sessions) Add(ctx context.Context, session Session) (*Session, error) {
	if session.StudentCount <= 0 {
		return nil, fmt.Errorf("%w: student count must be positive", ErrInvalid)
	}
	if session.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalid)
	}
	names, err := marshalStrings(session.LecturerNames)
	if err != nil {
		return nil, err
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (id, lecturer_names, tag, subject_name, subject_code, group_id, student_count, duration, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, names, session.Tag, session.SubjectName, session.SubjectCode, session.GroupID,
		session.StudentCount, session.Duration,
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return s.byID(ctx, id)
}

// Search performs a case-insensitive keyword match over lecturer names, tag,
// subject name, subject code, and group identifier. An empty keyword matches
// nothing.
func (s *Sessions) Search(ctx context.Context, keyword string) ([]Session, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE ` +
		keywordMatch("lecturer_names", "tag", "subject_name", "subject_code", "group_id") + ` ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("search sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

// Delete removes a session by identifier.
func (s *Sessions) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, `DELETE FROM sessions WHERE id = ?`, id)
}

func (s *Sessions) byID(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

const tagColumns = "id, name, created_at, updated_at"

// Tags returns every tag ordered by creation time.
func (s *Sessions) Tags(ctx context.Context) ([]Tag, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// AddTag inserts a tag. The name must be unused.
func (s *Sessions) AddTag(ctx context.Context, name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrInvalid)
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tags (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("tag name %q: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert tag: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+tagColumns+` FROM tags WHERE id = ?`, id)
	tag, err := scanTag(row)
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &tag, nil
}

// DeleteTag removes a tag by identifier. Sessions keep the tag value they
// were created with.
func (s *Sessions) DeleteTag(ctx context.Context, id string) error {
	return deleteByID(ctx, s.db, `DELETE FROM tags WHERE id = ?`, id)
}

func scanSession(scanner rowScanner) (Session, error) {
	var (
		session    Session
		namesRaw   string
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&session.ID, &namesRaw, &session.Tag, &session.SubjectName, &session.SubjectCode, &session.GroupID,
		&session.StudentCount, &session.Duration,
		&createdRaw, &updatedRaw,
	); err != nil {
		return Session{}, err
	}
	names, err := unmarshalStrings(namesRaw)
	if err != nil {
		return Session{}, fmt.Errorf("session lecturer names: %w", err)
	}
	session.LecturerNames = names
	if created, err := parseTimeString(createdRaw); err == nil {
		session.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		session.UpdatedAt = updated
	}
	return session, nil
}

func collectSessions(rows *sql.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func scanTag(scanner rowScanner) (Tag, error) {
	var (
		tag        Tag
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&tag.ID, &tag.Name, &createdRaw, &updatedRaw); err != nil {
		return Tag{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		tag.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		tag.UpdatedAt = updated
	}
	return tag, nil
}
