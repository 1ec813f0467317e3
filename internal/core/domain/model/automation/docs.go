// Package automation models production batches: groups of ACTIVE orders laid
// out on a print sheet, either by the external packing optimizer (Batch) or by
// hand with an uploaded layout file (ManualBatch).
//
// A batch only records the outcome. Moving its orders to AUTOMATED or
// MANUALLY_AUTOMATED is done by the command handlers in the same transaction
// that stores the batch.
package automation
