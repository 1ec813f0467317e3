// Package access models who is calling: a Session carries the user id and Role
// resolved by the transport layer, and Require turns the role rules of the order
// and batch workflows into explicit guard clauses.
//
// Role rules:
//   - any role may create orders and upload design files
//   - ADMIN approves, assigns, cancels, deletes orders and batches and edits the catalog
//   - STAFF and ADMIN update quantities, complete orders and submit batches
//   - CLIENT only sees orders it raised
package access
