// Package errs provides the error taxonomy shared by every layer of the food delivery service.
//
// Validation of input shape uses:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//
// Domain failures surfaced to callers use:
//   - ObjectNotFoundError: a referenced entity is absent
//   - BusinessRuleViolationError: a precondition about domain state failed
//   - InvalidStateTransitionError: a mutation was attempted on an entity in a terminal state
//   - ForbiddenError: the caller does not own the entity it tries to mutate
//   - AlreadyExistsError: a unique entity would be created twice
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying the details of the failure
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
package errs
