package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// PlaceOrderCommandHandler places validated orders on the ledger.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(ledger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// placed.Token() is the customer's token
type PlaceOrderCommandHandler struct {
	ledger ports.OrderLedger
}

func NewPlaceOrderCommandHandler(ledger ports.OrderLedger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		ledger: ledger,
	}
}

// Handle places the order and returns it with its assigned token.
// It fails only for a command that bypassed its constructor or a
// cancelled context.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	if err := ctx.Err(); err != nil {
		return order.Order{}, err
	}

	return h.ledger.Place(cmd.ItemName(), cmd.Quantity(), cmd.UnitPrice()), nil
}
