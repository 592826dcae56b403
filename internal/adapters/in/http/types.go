package http

import (
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Order defines model for Order.
type Order struct {
	Token      int64  `json:"token"`
	ItemName   string `json:"itemName"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	TotalPrice string `json:"totalPrice"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// OrderPlaced defines model for OrderPlaced.
type OrderPlaced struct {
	Token   int64  `json:"token"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

func orderFromResponse(r queries.OrderResponse) Order {
	return Order{
		Token:      int64(r.Token),
		ItemName:   r.ItemName,
		Quantity:   r.Quantity,
		UnitPrice:  r.UnitPrice.StringFixed(),
		TotalPrice: r.TotalPrice.StringFixed(),
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt.Format(order.CreatedAtLayout),
	}
}

func orderFromDomain(o order.Order) Order {
	return Order{
		Token:      int64(o.Token()),
		ItemName:   o.ItemName(),
		Quantity:   o.Quantity(),
		UnitPrice:  o.UnitPrice().StringFixed(),
		TotalPrice: o.TotalPrice().StringFixed(),
		Status:     o.Status().String(),
		CreatedAt:  o.FormattedCreatedAt(),
	}
}

func ordersFromResponses(rows []queries.OrderResponse) []Order {
	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = orderFromResponse(row)
	}
	return response
}
