package order

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
)

// ErrOrderIsAlreadyCompleted is returned when completing an order twice.
var ErrOrderIsAlreadyCompleted = errors.New("order is already completed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Completed
//
// Completed is terminal: an order never returns to Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order. Pending orders are
	// listed on the admin board.
	Pending

	// Completed indicates the order was served. This is a final state.
	Completed
)

// Validate checks that the status is Pending or Completed.
func (s Status) Validate() error {
	if s != Pending && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "Pending", "Completed" or "Unknown".
// The labels are the ones printed on the order slip.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//
// Invalid transitions:
//   - Completed -> Completed (returns ErrOrderIsAlreadyCompleted)
//   - Unknown -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (s, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	switch s {
	case Pending:
		return Completed, nil
	case Completed:
		return s, ErrOrderIsAlreadyCompleted
	case Unknown:
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	default:
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status to complete", s),
		)
	}
}
