package queries

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderResponse is one row of the admin order table.
type OrderResponse struct {
	Token      kernel.Token
	ItemName   string
	Quantity   int
	UnitPrice  kernel.Money
	TotalPrice kernel.Money
	Status     order.Status
	CreatedAt  time.Time
}

func toOrderResponse(o order.Order) OrderResponse {
	return OrderResponse{
		Token:      o.Token(),
		ItemName:   o.ItemName(),
		Quantity:   o.Quantity(),
		UnitPrice:  o.UnitPrice(),
		TotalPrice: o.TotalPrice(),
		Status:     o.Status(),
		CreatedAt:  o.CreatedAt(),
	}
}

func toOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
