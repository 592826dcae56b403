package queries

import (
	"context"

	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// GetReceiptQueryHandler builds order slips from the ledger.
// An unknown token yields an ObjectNotFoundError.
type GetReceiptQueryHandler struct {
	ledger ports.OrderLedger
}

func NewGetReceiptQueryHandler(ledger ports.OrderLedger) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{ledger: ledger}
}

func (h GetReceiptQueryHandler) Handle(ctx context.Context, query GetReceiptQuery) (GetReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReceiptQueryResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return GetReceiptQueryResponse{}, err
	}

	o, ok := h.ledger.Order(query.Token())
	if !ok {
		return GetReceiptQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token().String())
	}

	return GetReceiptQueryResponse{
		Token:        o.Token(),
		ItemName:     o.ItemName(),
		Quantity:     o.Quantity(),
		PricePerItem: o.UnitPrice().String(),
		Total:        o.TotalPrice().String(),
		OrderTime:    o.FormattedCreatedAt(),
		Status:       o.Status().String(),
	}, nil
}
