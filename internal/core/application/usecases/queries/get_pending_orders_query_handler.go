package queries

import (
	"context"

	"canteen/internal/core/ports"
)

// GetPendingOrdersQueryHandler lists pending orders in placement order.
type GetPendingOrdersQueryHandler struct {
	ledger ports.OrderLedger
}

func NewGetPendingOrdersQueryHandler(ledger ports.OrderLedger) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{ledger: ledger}
}

func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.ledger.PendingOrders()), nil
}
