package order_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2026, 10, 18, 9, 5, 3, 0, time.UTC)

	t.Run("should create pending order with all fields", func(t *testing.T) {
		o := order.NewOrder(7, "Sandwich", 2, kernel.MustParseMoney("3.50"), createdAt)

		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.Token(7), o.Token())
		assert.Equal(t, "Sandwich", o.ItemName())
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, "3.50", o.UnitPrice().StringFixed())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsComplete())
	})

	t.Run("should compute total price", func(t *testing.T) {
		o := order.NewOrder(1, "Sandwich", 2, kernel.MustParseMoney("3.50"), createdAt)

		assert.True(t, o.TotalPrice().IsEqual(kernel.MustParseMoney("7.00")))
		assert.Equal(t, "$7.00", o.TotalPrice().String())
	})

	t.Run("should format created at with fixed layout", func(t *testing.T) {
		o := order.NewOrder(1, "Tea", 1, kernel.MustParseMoney("1"), createdAt)

		assert.Equal(t, "2026-10-18 09:05:03", o.FormattedCreatedAt())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MarkComplete(t *testing.T) {
	t.Run("should complete pending order", func(t *testing.T) {
		o := order.NewOrder(1, "Bun", 1, kernel.MustParseMoney("0.75"), time.Now())

		require.NoError(t, o.MarkComplete())
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.IsComplete())
	})

	t.Run("should report second completion and stay completed", func(t *testing.T) {
		o := order.NewOrder(1, "Bun", 1, kernel.MustParseMoney("0.75"), time.Now())
		require.NoError(t, o.MarkComplete())

		err := o.MarkComplete()

		require.ErrorIs(t, err, order.ErrOrderIsAlreadyCompleted)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("copies are independent snapshots", func(t *testing.T) {
		o := order.NewOrder(1, "Coffee", 2, kernel.MustParseMoney("2.50"), time.Now())
		snapshot := *o

		require.NoError(t, o.MarkComplete())

		assert.False(t, snapshot.IsComplete())
		assert.True(t, o.IsComplete())
	})
}
