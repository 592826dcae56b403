// Package journalrepo records ledger notifications in a PostgreSQL table.
// It converts order snapshots into append-only event rows; nothing in the
// application reads the rows back into the ledger.
package journalrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTableName is used when no journal table is configured.
const DefaultTableName = "order_events"

// EventType names the ledger notification an event row was recorded from.
type EventType string

const (
	EventOrderAdded         EventType = "order.added"
	EventOrderStatusChanged EventType = "order.status_changed"
)

// OrderEventDTO is one journal row: the order as it was when the event fired.
type OrderEventDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Event      EventType       `gorm:"size:32;not null"`
	Token      int64           `gorm:"index;not null"`
	ItemName   string          `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status     int             `gorm:"not null"`
	OrderedAt  time.Time       `gorm:"not null"`
	RecordedAt time.Time       `gorm:"index;not null"`
}

// TableName is the default table; the journal overrides it per configuration.
func (OrderEventDTO) TableName() string {
	return DefaultTableName
}

// fromDomain captures an order snapshot as an event row.
func fromDomain(id kernel.UUID, event EventType, o order.Order, recordedAt time.Time) OrderEventDTO {
	return OrderEventDTO{
		ID:         id.Bytes(),
		Event:      event,
		Token:      int64(o.Token()),
		ItemName:   o.ItemName(),
		Quantity:   o.Quantity(),
		UnitPrice:  o.UnitPrice().Amount(),
		TotalPrice: o.TotalPrice().Amount(),
		Status:     int(o.Status()),
		OrderedAt:  o.CreatedAt(),
		RecordedAt: recordedAt,
	}
}

// OrderStatus returns the recorded status as a domain value.
func (d OrderEventDTO) OrderStatus() order.Status {
	return order.Status(d.Status)
}
