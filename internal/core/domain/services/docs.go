// Package services contains stateless domain services that do not belong to
// a single aggregate:
//
//   - AudienceRouter decides which broadcast channels are told about each
//     order lifecycle event, and with which payload
//   - AccessPolicy maps staff roles to the capabilities they may invoke
//
// Both are pure: they hold no state and touch no I/O.
package services
