// Package ports defines the contracts between the canteen core and its
// collaborators: the ledger consumed by use cases and the listener
// capability implemented by presentation and outbound adapters.
package ports

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderListener receives ledger change notifications.
//
// Listeners are invoked synchronously, in subscription order, on the
// goroutine that changed the ledger and after the ledger has released its
// lock. They receive copies of orders. A listener must not block; adapters that
// do I/O hand the event off or bound it with a timeout.
//
// Implementations must be comparable (typically a pointer) so that
// Unsubscribe can find them.
type OrderListener interface {
	// OrderAdded is called once for every placed order.
	OrderAdded(o order.Order)

	// OrderStatusChanged is called when a pending order becomes completed.
	OrderStatusChanged(o order.Order)
}

// OrderLedger is the single source of truth for orders placed in this process.
type OrderLedger interface {
	// Place assigns the next token, records the order as Pending and notifies
	// listeners with OrderAdded. Inputs are trusted; validation belongs to the
	// caller.
	Place(itemName string, quantity int, unitPrice kernel.Money) order.Order

	// Complete marks the order with the given token as Completed and notifies
	// listeners with OrderStatusChanged. It returns false when no order has
	// that token. Completing an already completed order returns true and
	// notifies nobody.
	Complete(token kernel.Token) bool

	// Order returns a copy of the order with the given token.
	Order(token kernel.Token) (order.Order, bool)

	// AllOrders returns a snapshot of every order in placement order.
	AllOrders() []order.Order

	// PendingOrders returns a snapshot of orders that are not completed, in
	// placement order.
	PendingOrders() []order.Order

	// Subscribe registers a listener. The same listener may be registered
	// more than once and is then notified once per registration.
	Subscribe(listener OrderListener)

	// Unsubscribe removes the earliest registration of listener, if any.
	Unsubscribe(listener OrderListener)
}
