package journalrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/clock"

	"gorm.io/gorm"
)

// ErrEventTypeIsUnknown is returned when recording an unsupported event type.
var ErrEventTypeIsUnknown = errors.New("event type is unknown")

// GormOrderEventJournal appends order events using GORM.
type GormOrderEventJournal struct {
	db    *gorm.DB
	table string
	clock clock.Clock
}

// NewGormOrderEventJournal creates a journal writing to table.
// An empty table name falls back to DefaultTableName.
func NewGormOrderEventJournal(db *gorm.DB, table string, clk clock.Clock) *GormOrderEventJournal {
	if table == "" {
		table = DefaultTableName
	}
	if clk == nil {
		clk = clock.NewSystem()
	}

	return &GormOrderEventJournal{
		db:    db,
		table: table,
		clock: clk,
	}
}

// Table returns the configured table name.
func (j *GormOrderEventJournal) Table() string {
	return j.table
}

// Migrate creates or updates the journal table.
func (j *GormOrderEventJournal) Migrate(ctx context.Context) error {
	return j.db.WithContext(ctx).Table(j.table).AutoMigrate(&OrderEventDTO{})
}

// Record appends one event row for the order snapshot.
func (j *GormOrderEventJournal) Record(ctx context.Context, event EventType, o order.Order) error {
	if event != EventOrderAdded && event != EventOrderStatusChanged {
		return ErrEventTypeIsUnknown
	}
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(kernel.NewUUID(), event, o, j.clock.Now())
	return j.db.WithContext(ctx).Table(j.table).Create(&dto).Error
}

// ListByToken returns the events recorded for one token, oldest first.
func (j *GormOrderEventJournal) ListByToken(ctx context.Context, token kernel.Token) ([]OrderEventDTO, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderEventDTO
	err := j.db.WithContext(ctx).
		Table(j.table).
		Where("token = ?", int64(token)).
		Order("recorded_at ASC").
		Order("event ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return dtos, nil
}
