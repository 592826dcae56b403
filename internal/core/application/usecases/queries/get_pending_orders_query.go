package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the orders still waiting to be served.
// It backs the admin board and the periodic pending orders report.
//
// Example:
//
//	handler := NewGetPendingOrdersQueryHandler(ledger)
//	pending, err := handler.Handle(ctx, NewGetPendingOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, row := range pending {
//	    fmt.Printf("#%s %s x%d\n", row.Token, row.ItemName, row.Quantity)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
