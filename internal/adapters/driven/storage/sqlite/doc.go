// Package sqlite provides a SQLite-backed implementation of the order,
// invoice and user stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. All stores share one database connection.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Each migration is a pair of .up.sql and .down.sql files; applied
// versions are recorded in schema_migrations.
//
// Money columns hold the decimal's string form so amounts round-trip exactly.
//
// # Data Location
//
// By default, the database is stored at ~/.solidkit/data/solidkit.db
package sqlite
