// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projection-shaped
// responses straight from the database with raw SQL.
package queries
