// Package errs holds the typed errors shared by the domain, the use cases and the
// HTTP edge of printflow.
//
// Every error type follows one shape: a sentinel variable, a struct carrying the
// details (parameter name, offending ids, limits), constructors with and without a
// cause, Error() for the message and Unwrap() returning the sentinel so callers can
// classify with errors.Is.
//
// Value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
// ObjectNotFoundError) are raised by constructors and repositories. Lifecycle errors
// (ValidationError, InvalidTransitionError, ConflictError, BatchValidationError,
// AutomationFailedError, PayloadTooLargeError, ForbiddenError) are what the order and
// batch use cases report to their callers.
package errs
