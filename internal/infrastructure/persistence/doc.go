// Package persistence provides the GORM-backed repository implementations and
// the database connection factory for the sqlite (default) and postgres
// backends.
package persistence
