// Package staff provides the domain model for venue staff: the User
// aggregate and the Role enum that the access policy keys on.
//
// Passwords never enter this package in clear text; users carry an opaque
// credential hash produced by the application layer.
package staff
