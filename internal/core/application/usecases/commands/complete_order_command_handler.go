package commands

import (
	"context"

	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// CompleteOrderCommandHandler marks orders as completed.
//
// The ledger reports an unknown token as a plain miss; the handler turns the
// miss into an ObjectNotFoundError so the caller can warn the admin.
// Completing an order that is already completed succeeds.
type CompleteOrderCommandHandler struct {
	ledger ports.OrderLedger
}

func NewCompleteOrderCommandHandler(ledger ports.OrderLedger) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		ledger: ledger,
	}
}

// Handle completes the order named by the command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if !h.ledger.Complete(cmd.Token()) {
		return errs.NewObjectNotFoundError("token", cmd.Token().String())
	}

	return nil
}
