// Package errs provides the typed errors shared by the order desk.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g., ErrObjectNotFound)
//   - a struct type carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels map onto the three failure kinds callers have to tell apart:
//   - ErrObjectNotFound: a referenced order, client or product does not exist
//   - ErrInvalidTransition: a status change is not allowed from the current state
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: malformed input
//     (grouped by IsValidation)
//
// ErrConcurrentUpdate signals a lost compare-and-swap and is handled inside the
// sequence generator.
package errs
