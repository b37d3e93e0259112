// Package models contains the GORM table models and their conversions to and
// from the domain entities. Uniqueness lives here as database constraints:
// companies.name, users.username and users.email carry unique indexes that
// are the final arbiter for conflicting writes.
package models
