// Package metrics exposes ledger activity as Prometheus metrics.
package metrics

import (
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ports.OrderListener = (*Listener)(nil)

// Listener updates order counters from ledger notifications.
type Listener struct {
	placed    prometheus.Counter
	completed prometheus.Counter
	pending   prometheus.Gauge
	revenue   prometheus.Counter
	quantity  prometheus.Histogram
}

// NewListener registers the canteen order metrics with reg.
// Registering twice on the same registry panics, as with promauto.
func NewListener(reg prometheus.Registerer) *Listener {
	factory := promauto.With(reg)

	return &Listener{
		placed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "canteen",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed",
		}),
		completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "canteen",
			Name:      "orders_completed_total",
			Help:      "Total number of orders marked complete",
		}),
		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "canteen",
			Name:      "orders_pending",
			Help:      "Number of orders waiting to be served",
		}),
		revenue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "canteen",
			Name:      "order_revenue_total",
			Help:      "Sum of order totals in currency units",
		}),
		quantity: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "canteen",
			Name:      "order_quantity",
			Help:      "Items per order",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),
	}
}

func (l *Listener) OrderAdded(o order.Order) {
	l.placed.Inc()
	l.pending.Inc()
	l.revenue.Add(o.TotalPrice().Amount().InexactFloat64())
	l.quantity.Observe(float64(o.Quantity()))
}

func (l *Listener) OrderStatusChanged(o order.Order) {
	if !o.IsComplete() {
		return
	}
	l.completed.Inc()
	l.pending.Dec()
}
