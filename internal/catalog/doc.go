// Package catalog implements the resource access modules for the timetable
// catalog: one type per resource family (locations, subjects, lecturers,
// schedules, sessions/tags, students/subgroups) owning validation, natural-key
// uniqueness, keyword search, and row mapping.
//
// Uniqueness is enforced by the store's UNIQUE indexes rather than
// application pre-checks, so two concurrent adds of the same code cannot both
// succeed; constraint violations surface as ErrDuplicate. All methods take a
// context and return wrapped errors classified by Kind so the IPC layer can
// shape failures without forwarding raw store faults.
package catalog
