package catalog

import "time"

// Building is a campus building registered by its human-chosen code.
type Building struct {
	ID        string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room references its Building by code, not by store identifier. The
// reference is validated at write time; it is not cascade-protected, so
// deleting a building leaves existing rooms pointing at the old code.
type Room struct {
	ID           string
	Code         string
	Type         string
	BuildingCode string
	Capacity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subject carries weekly hour counts per delivery mode. Counts are stored as
// given; the only rule is that they are non-negative.
type Subject struct {
	ID            string
	Code          string
	Year          int
	Semester      int
	Name          string
	LectureHours  int
	TutorialHours int
	LabHours      int
	EvalHours     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Lecturer is keyed on the university employee id.
type Lecturer struct {
	ID         string
	EmployeeID string
	Name       string
	Faculty    string
	Department string
	Center     string
	Building   string
	Level      string
	Rank       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Schedule is a working-week template. Multiple templates may coexist; the
// family has no uniqueness constraint.
type Schedule struct {
	ID           string
	DayCount     int
	WorkingDays  []string
	StartingTime string
	Duration     string
	WorkingTime  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session bundles lecturers, a subject, and a student group for timetabling.
// LecturerNames is an ordered denormalized snapshot: renaming a lecturer
// afterward does not change existing sessions.
type Session struct {
	ID            string
	LecturerNames []string
	Tag           string
	SubjectName   string
	SubjectCode   string
	GroupID       string
	StudentCount  int
	Duration      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Tag labels sessions (lecture, tutorial, lab, ...).
type Tag struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Student is the read projection used to populate group pickers.
type Student struct {
	ID            string
	Year          int
	Semester      int
	Programme     string
	Group         string
	SubGroup      string
	GroupLabel    string
	SubGroupLabel string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TimeRange marks hours a subgroup cannot be scheduled.
type TimeRange struct {
	Day  string `json:"day"`
	From string `json:"from"`
	To   string `json:"to"`
}

// SubGroup is a schedulable student subgroup. UnavailableHours is keyed by
// slot name and stays nil until unavailability is recorded; a nil map is
// persisted as SQL NULL, never as an empty object.
type SubGroup struct {
	ID               string
	Code             string
	UnavailableHours map[string]TimeRange
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
