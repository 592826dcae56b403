package journalrepo

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// DefaultWriteTimeout bounds a single journal write.
const DefaultWriteTimeout = 2 * time.Second

var _ ports.OrderListener = (*Listener)(nil)

type recorder interface {
	Record(ctx context.Context, event EventType, o order.Order) error
}

// Listener forwards ledger notifications to the journal.
// Writes run on the notifying goroutine with a timeout; failures are logged
// and never reach the ledger or the customer.
type Listener struct {
	journal recorder
	timeout time.Duration
	logger  *slog.Logger
}

func NewListener(journal recorder, timeout time.Duration, logger *slog.Logger) *Listener {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}

	return &Listener{
		journal: journal,
		timeout: timeout,
		logger:  logger.With("component", "order_event_journal"),
	}
}

func (l *Listener) OrderAdded(o order.Order) {
	l.record(EventOrderAdded, o)
}

func (l *Listener) OrderStatusChanged(o order.Order) {
	l.record(EventOrderStatusChanged, o)
}

func (l *Listener) record(event EventType, o order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if err := l.journal.Record(ctx, event, o); err != nil {
		l.logger.ErrorContext(ctx, "Failed to journal order event",
			"event", string(event),
			"token", int64(o.Token()),
			"error", err,
		)
	}
}
