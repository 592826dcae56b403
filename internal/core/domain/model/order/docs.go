// Package order provides the Order entity of the canteen domain.
//
// The package includes:
//   - Order: one customer request identified by its token
//   - Status: the Pending -> Completed state machine
//
// Key business rules:
//   - Orders are created Pending by the order ledger, never directly by callers
//   - Total price is quantity times unit price, computed exactly
//   - Completed is terminal; completing twice reports ErrOrderIsAlreadyCompleted
//   - Orders are never deleted for the lifetime of the process
package order
