// Package errs provides the standardized error taxonomy for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The taxonomy maps directly onto the outcomes the request boundary must
// distinguish:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     invalid input, no mutation attempted
//   - ObjectNotFoundError: a referenced object does not exist
//   - ConflictError: the store rejected the operation due to a constraint
//   - StoreUnavailableError: the store is busy or unreachable; the caller
//     may retry, this package's consumers never retry themselves
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
