package queries

import (
	"context"

	"canteen/internal/core/ports"
)

// GetAllOrdersQueryHandler lists all orders in placement order.
type GetAllOrdersQueryHandler struct {
	ledger ports.OrderLedger
}

func NewGetAllOrdersQueryHandler(ledger ports.OrderLedger) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{ledger: ledger}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.ledger.AllOrders()), nil
}
