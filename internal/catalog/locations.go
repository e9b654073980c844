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

// Locations is the access module for the Building and Room families.
type Locations struct {
	db *sql.DB
}

// NewLocations binds the module to the shared store handle.
func NewLocations(st *store.Store) *Locations {
	return &Locations{db: st.DB()}
}

const buildingColumns = "id, code, created_at, updated_at"

// Buildings returns every building ordered by creation time.
func (l *Locations) Buildings(ctx context.Context) ([]Building, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT `+buildingColumns+` FROM buildings ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()

	var buildings []Building
	for rows.Next() {
		building, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, building)
	}
	return buildings, rows.Err()
}

// AddBuilding inserts a building. The code must be unused.
func (l *Locations) AddBuilding(ctx context.Context, code string) (*Building, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: building code is required", ErrInvalid)
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO buildings (id, code, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, code, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("building code %q: %w", code, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert building: %w", err)
	}
	return l.buildingByID(ctx, id)
}

func (l *Locations) buildingByID(ctx context.Context, id string) (*Building, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+buildingColumns+` FROM buildings WHERE id = ?`, id)
	building, err := scanBuilding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get building: %w", err)
	}
	return &building, nil
}

// buildingExists checks the soft Room→Building reference before a write.
func (l *Locations) buildingExists(ctx context.Context, code string) (bool, error) {
	var count int
	row := l.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM buildings WHERE code = ?`, code)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("check building reference: %w", err)
	}
	return count > 0, nil
}

const roomColumns = "id, code, room_type, building_code, capacity, created_at, updated_at"

// Rooms returns every room ordered by creation time.
func (l *Locations) Rooms(ctx context.Context) ([]Room, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()
	return collectRooms(rows)
}

// AddRoom inserts a room. The room code must be unused and the building code
// must reference an existing building.
func (l *Locations) AddRoom(ctx context.Context, code, roomType, buildingCode string, capacity int) (*Room, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: room code is required", ErrInvalid)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalid)
	}
	ok, err := l.buildingExists(ctx, buildingCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("building %q: %w", buildingCode, ErrMissingReference)
	}

	id := store.NewID()
	now := timestamp(time.Now())
	_, err = l.db.ExecContext(
		ctx,
		`INSERT INTO rooms (id, code, room_type, building_code, capacity, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, code, roomType, buildingCode, capacity, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("room code %q: %w", code, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return l.roomByID(ctx, id)
}

// SearchRooms performs a case-insensitive keyword match over room code, room
// type, and building code. An empty keyword matches nothing.
func (l *Locations) SearchRooms(ctx context.Context, keyword string) ([]Room, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE ` +
		keywordMatch("code", "room_type", "building_code") + ` ORDER BY created_at`
	rows, err := l.db.QueryContext(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}
	defer rows.Close()
	return collectRooms(rows)
}

// EditRoom updates the room identified by id. The uniqueness rule is
// re-applied against all records except the edited one; keeping the room's
// own code is always allowed.
func (l *Locations) EditRoom(ctx context.Context, id, code, roomType, buildingCode string, capacity int) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: room code is required", ErrInvalid)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalid)
	}
	ok, err := l.buildingExists(ctx, buildingCode)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("building %q: %w", buildingCode, ErrMissingReference)
	}

	res, err := l.db.ExecContext(
		ctx,
		`UPDATE rooms SET code = ?, room_type = ?, building_code = ?, capacity = ?, updated_at = ?
         WHERE id = ?`,
		code, roomType, buildingCode, capacity, timestamp(time.Now()), id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("room code %q: %w", code, ErrDuplicate)
		}
		return fmt.Errorf("update room: %w", err)
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

// DeleteRoom removes a room by identifier.
func (l *Locations) DeleteRoom(ctx context.Context, id string) error {
	return deleteByID(ctx, l.db, `DELETE FROM rooms WHERE id = ?`, id)
}

func (l *Locations) roomByID(ctx context.Context, id string) (*Room, error) {
	row := l.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	room, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuilding(scanner rowScanner) (Building, error) {
	var (
		building   Building
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&building.ID, &building.Code, &createdRaw, &updatedRaw); err != nil {
		return Building{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		building.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		building.UpdatedAt = updated
	}
	return building, nil
}

func scanRoom(scanner rowScanner) (Room, error) {
	var (
		room       Room
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(&room.ID, &room.Code, &room.Type, &room.BuildingCode, &room.Capacity, &createdRaw, &updatedRaw); err != nil {
		return Room{}, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		room.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		room.UpdatedAt = updated
	}
	return room, nil
}

func collectRooms(rows *sql.Rows) ([]Room, error) {
	var rooms []Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
