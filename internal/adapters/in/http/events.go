package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	EventOrderAdded         = "order.added"
	EventOrderStatusChanged = "order.status_changed"

	// streamBufferSize is how many events a client may lag behind before
	// further events are dropped for it.
	streamBufferSize = 64
)

type orderEvent struct {
	name  string
	order order.Order
}

var _ ports.OrderListener = (*streamListener)(nil)

// streamListener queues ledger notifications for one event stream client.
// It never blocks the ledger: a full queue drops the event.
type streamListener struct {
	events chan orderEvent
}

func newStreamListener(size int) *streamListener {
	return &streamListener{events: make(chan orderEvent, size)}
}

func (l *streamListener) OrderAdded(o order.Order) {
	l.publish(orderEvent{name: EventOrderAdded, order: o})
}

func (l *streamListener) OrderStatusChanged(o order.Order) {
	l.publish(orderEvent{name: EventOrderStatusChanged, order: o})
}

func (l *streamListener) publish(ev orderEvent) {
	select {
	case l.events <- ev:
	default:
	}
}

// StreamOrderEvents handles GET /api/v1/orders/events.
// The stream stays open until the client goes away.
func (s *Server) StreamOrderEvents(ctx echo.Context) error {
	stream := newStreamListener(streamBufferSize)
	s.subscriber.Subscribe(stream)
	defer s.subscriber.Unsubscribe(stream)

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case ev := <-stream.events:
			if err := writeEvent(res, ev); err != nil {
				return err
			}
			res.Flush()
		}
	}
}

func writeEvent(w io.Writer, ev orderEvent) error {
	data, err := json.Marshal(orderFromDomain(ev.order))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, data)
	return err
}
