// Package errors provides the structured error handling used across roll-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the API handler
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("item not found")
//	err := errors.InvalidArgumentf("invalid damage index: %d", idx)
//
// Adding metadata:
//
//	err := errors.NotFound("item not found").
//	    WithMeta("item_id", itemID).
//	    WithMeta("owner_id", ownerID)
//
// Wrapping errors:
//
//	if err := repo.Get(id); err != nil {
//	    return errors.Wrap(err, "failed to get item")
//	}
//
// # Error Checking
//
// Code checks are done through the helpers rather than type assertions:
//
//	if errors.IsNotFound(err) { ... }
//	if errors.IsCanceled(err) { ... }
//
// # Roll failure taxonomy
//
// The roll orchestrator maps its failure modes onto codes:
//
//   - charge/resource precondition failures -> CodeFailedPrecondition
//   - dismissed slot dialogs               -> CodeCanceled
//   - malformed formulas / bad requests    -> CodeInvalidArgument
//
// A missing damage formula is not an error at all: the affected field is
// skipped and the request continues.
package errors
