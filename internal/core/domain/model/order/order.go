package order

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

// CreatedAtLayout is the fixed timestamp layout used by display surfaces.
const CreatedAtLayout = "2006-01-02 15:04:05"

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is one customer request: an item, a quantity, a unit price and the
// token the customer was given.
//
// Order follows these invariants:
//   - The token never changes after creation
//   - Status starts as Pending and can only move to Completed
//   - Created only through NewOrder, which the order ledger calls with the
//     next token from its sequence
//
// NewOrder does not validate item name, quantity or price. Those are checked
// by the place order command before the ledger is asked to place the order.
//
// Order is a plain value: copying it yields an independent snapshot. The ledger
// keeps its own copies and hands out values, so mutating a returned Order never
// changes ledger state.
type Order struct { //nolint:recvcheck //MarkComplete mutates, accessors read copies
	token     kernel.Token
	itemName  string
	quantity  int
	unitPrice kernel.Money
	createdAt time.Time
	status    Status

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
// Parameters:
//   - token: the token assigned by the ledger
//   - itemName: the ordered item as typed by the customer
//   - quantity: number of items
//   - unitPrice: price of one item
//   - createdAt: placement time
//
// Example:
//
//	o := order.NewOrder(1, "Tea", 2, kernel.MustParseMoney("1.00"), time.Now())
//	fmt.Println(o.TotalPrice()) // $2.00
func NewOrder(
	token kernel.Token,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	createdAt time.Time,
) *Order {
	return &Order{
		token:     token,
		itemName:  itemName,
		quantity:  quantity,
		unitPrice: unitPrice,
		createdAt: createdAt,
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the Order was created through NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Token returns the order's token.
func (o Order) Token() kernel.Token {
	return o.token
}

// ItemName returns the ordered item.
func (o Order) ItemName() string {
	return o.itemName
}

// Quantity returns the number of items ordered.
func (o Order) Quantity() int {
	return o.quantity
}

// UnitPrice returns the price of a single item.
func (o Order) UnitPrice() kernel.Money {
	return o.unitPrice
}

// TotalPrice returns quantity x unit price.
func (o Order) TotalPrice() kernel.Money {
	return o.unitPrice.Multiply(o.quantity)
}

// CreatedAt returns the placement time.
func (o Order) CreatedAt() time.Time {
	return o.createdAt
}

// FormattedCreatedAt returns the placement time as "YYYY-MM-DD HH:MM:SS".
func (o Order) FormattedCreatedAt() string {
	return o.createdAt.Format(CreatedAtLayout)
}

// Status returns the current lifecycle status.
func (o Order) Status() Status {
	return o.status
}

// IsComplete reports whether the order has been served.
func (o Order) IsComplete() bool {
	return o.status == Completed
}

// MarkComplete moves the order from Pending to Completed.
//
// Returns:
//   - nil on the first completion
//   - ErrOrderIsAlreadyCompleted if the order is already Completed; the
//     order is left unchanged
//
// Example:
//
//	if err := o.MarkComplete(); errors.Is(err, order.ErrOrderIsAlreadyCompleted) {
//	    // nothing changed
//	}
func (o *Order) MarkComplete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
