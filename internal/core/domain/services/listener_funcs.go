package services

import (
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

var _ ports.OrderListener = (*ListenerFuncs)(nil)

// ListenerFuncs adapts two optional callbacks to ports.OrderListener.
// Subscribe a pointer so it can later be unsubscribed:
//
//	l := &services.ListenerFuncs{Added: func(o order.Order) { ... }}
//	ledger.Subscribe(l)
//	defer ledger.Unsubscribe(l)
type ListenerFuncs struct {
	Added         func(o order.Order)
	StatusChanged func(o order.Order)
}

func (f *ListenerFuncs) OrderAdded(o order.Order) {
	if f.Added != nil {
		f.Added(o)
	}
}

func (f *ListenerFuncs) OrderStatusChanged(o order.Order) {
	if f.StatusChanged != nil {
		f.StatusChanged(o)
	}
}
