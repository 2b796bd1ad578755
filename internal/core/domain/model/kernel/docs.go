// Package kernel contains shared value objects used across domain aggregates.
// It provides UUID for entity identity and TableNumber for physical table
// references, both immutable and validated at construction.
package kernel
