// Package order holds the Order aggregate of a print job.
//
// An order stores a snapshot of the product, size, paper, printing side and
// finishing choices it was priced with, the unit price and total agreed at
// creation and its lifecycle status:
//
//	PENDING -> ACTIVE -> AUTOMATED | MANUALLY_AUTOMATED -> COMPLETED
//	PENDING | ACTIVE -> CANCELLED -> DELETED
//
// Changing the quantity recomputes the total from the captured unit price and
// re-opens the order as ACTIVE. Illegal transitions fail with
// errs.InvalidTransitionError and leave the order untouched.
package order
