// Package store owns the SQLite database backing the registrar catalog: one
// table per resource family, connection lifecycle, pragmas, and the embedded
// migration runner.
//
// Natural-key uniqueness (building code, room code, subject code, employee
// id, tag name, subgroup code) is enforced with UNIQUE indexes so concurrent
// writers cannot both succeed; access modules treat constraint violations as
// duplicate-key failures rather than faults. Row identifiers are UUID strings
// assigned at insert and never reused.
//
// Treat this package as the single source of truth for the persisted layout;
// schema changes are new files under migrations/.
package store
