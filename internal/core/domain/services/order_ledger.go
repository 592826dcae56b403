package services

import (
	"reflect"
	"slices"
	"sync"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/clock"
)

var _ ports.OrderLedger = (*OrderLedger)(nil)

// OrderLedger is the in-memory record of every order placed in the process.
//
// Key responsibilities:
//   - Assigning tokens from its TokenSequence
//   - Keeping orders in placement order for the lifetime of the process
//   - Completing orders by token
//   - Notifying subscribed listeners of additions and completions
//
// Concurrency: a mutex serializes all reads and mutations, and a token is
// drawn while the lock is held so placement order always matches token
// order. Listeners run after the lock is released, so a listener may call
// the read operations of the ledger it is subscribed to.
//
// Example usage:
//
//	ledger := services.NewOrderLedger(services.NewTokenSequence(1), clock.NewSystem())
//	ledger.Subscribe(&services.ListenerFuncs{
//	    Added: func(o order.Order) { fmt.Println("new token", o.Token()) },
//	})
//
//	o := ledger.Place("Tea", 1, kernel.MustParseMoney("1.00"))
//	if !ledger.Complete(o.Token()) {
//	    // unknown token
//	}
type OrderLedger struct {
	mu        sync.Mutex
	orders    []*order.Order
	listeners []ports.OrderListener

	sequence *TokenSequence
	clock    clock.Clock
}

// NewOrderLedger creates an empty ledger.
//
// Parameters:
//   - sequence: token source; nil starts a private sequence at kernel.MinToken
//   - clk: creation time source; nil uses the system clock
func NewOrderLedger(sequence *TokenSequence, clk clock.Clock) *OrderLedger {
	if sequence == nil {
		sequence = NewTokenSequence(kernel.MinToken)
	}
	if clk == nil {
		clk = clock.NewSystem()
	}

	return &OrderLedger{
		orders:    make([]*order.Order, 0),
		listeners: make([]ports.OrderListener, 0),
		sequence:  sequence,
		clock:     clk,
	}
}

// Place records a new Pending order and returns a copy of it.
// Inputs are not re-validated here; see commands.PlaceOrderCommand.
func (l *OrderLedger) Place(itemName string, quantity int, unitPrice kernel.Money) order.Order {
	l.mu.Lock()
	o := order.NewOrder(l.sequence.Next(), itemName, quantity, unitPrice, l.clock.Now())
	l.orders = append(l.orders, o)
	placed := *o
	listeners := slices.Clone(l.listeners)
	l.mu.Unlock()

	for _, listener := range listeners {
		listener.OrderAdded(placed)
	}

	return placed
}

// Complete marks the order with the given token as Completed.
//
// Returns:
//   - false if no order has the token; nothing changes and nobody is notified
//   - true if the order exists; listeners are notified only when the order
//     actually moved from Pending to Completed
func (l *OrderLedger) Complete(token kernel.Token) bool {
	l.mu.Lock()
	o := l.find(token)
	if o == nil {
		l.mu.Unlock()
		return false
	}

	if err := o.MarkComplete(); err != nil {
		// already completed
		l.mu.Unlock()
		return true
	}

	completed := *o
	listeners := slices.Clone(l.listeners)
	l.mu.Unlock()

	for _, listener := range listeners {
		listener.OrderStatusChanged(completed)
	}

	return true
}

// Order returns a copy of the order with the given token.
func (l *OrderLedger) Order(token kernel.Token) (order.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o := l.find(token)
	if o == nil {
		return order.Order{}, false
	}
	return *o, true
}

// AllOrders returns copies of all orders in placement order.
func (l *OrderLedger) AllOrders() []order.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	all := make([]order.Order, 0, len(l.orders))
	for _, o := range l.orders {
		all = append(all, *o)
	}
	return all
}

// PendingOrders returns copies of the orders that are not completed,
// in placement order.
func (l *OrderLedger) PendingOrders() []order.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	pending := make([]order.Order, 0)
	for _, o := range l.orders {
		if !o.IsComplete() {
			pending = append(pending, *o)
		}
	}
	return pending
}

// Subscribe appends a listener. Nil listeners are ignored.
// Unsubscribe finds listeners with ==, so pass a pointer or another
// comparable value to be able to remove it later.
func (l *OrderLedger) Subscribe(listener ports.OrderListener) {
	if listener == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, listener)
}

// Unsubscribe removes the earliest registration of listener.
// A listener whose dynamic type is not comparable can never match and is
// left subscribed.
func (l *OrderLedger) Unsubscribe(listener ports.OrderListener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if i := slices.Index(l.listeners, listener); i >= 0 {
		l.listeners = slices.Delete(l.listeners, i, i+1)
	}
}

// SubscriberCount returns the number of current registrations.
func (l *OrderLedger) SubscriberCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}

// find does a linear scan; the caller must hold l.mu.
func (l *OrderLedger) find(token kernel.Token) *order.Order {
	for _, o := range l.orders {
		if o.Token() == token {
			return o
		}
	}
	return nil
}
