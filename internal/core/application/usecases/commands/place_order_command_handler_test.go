package commands_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	price := kernel.MustParseMoney("2.50")
	cmd, err := commands.NewPlaceOrderCommand("Coffee", 2, price)
	require.NoError(t, err)

	placed := *order.NewOrder(5, "Coffee", 2, price, time.Now())
	ledger := new(MockOrderLedger)
	ledger.On("Place", "Coffee", 2, price).Return(placed).Once()

	h := commands.NewPlaceOrderCommandHandler(ledger)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.Token(5), got.Token())
	ledger.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ledger := new(MockOrderLedger)
	h := commands.NewPlaceOrderCommandHandler(ledger)

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	ledger.AssertNotCalled(t, "Place", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CancelledContext(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand("Coffee", 2, kernel.MustParseMoney("2.50"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	ledger := new(MockOrderLedger)
	h := commands.NewPlaceOrderCommandHandler(ledger)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, context.Canceled)
	ledger.AssertNotCalled(t, "Place", mock.Anything, mock.Anything, mock.Anything)
}
