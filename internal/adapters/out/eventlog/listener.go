// Package eventlog writes ledger notifications to the structured log.
package eventlog

import (
	"context"
	"log/slog"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

var _ ports.OrderListener = (*Listener)(nil)

// Listener logs one line per ledger change.
type Listener struct {
	logger *slog.Logger
}

func NewListener(logger *slog.Logger) *Listener {
	return &Listener{logger: logger.With("component", "order_event_log")}
}

func (l *Listener) OrderAdded(o order.Order) {
	l.logger.InfoContext(context.Background(), "Order added: Token #"+o.Token().String()+" - "+o.ItemName(),
		"token", int64(o.Token()),
		"item", o.ItemName(),
		"quantity", o.Quantity(),
		"total", o.TotalPrice().StringFixed(),
	)
}

func (l *Listener) OrderStatusChanged(o order.Order) {
	l.logger.InfoContext(context.Background(), "Order marked complete: Token #"+o.Token().String(),
		"token", int64(o.Token()),
		"status", o.Status().String(),
	)
}
