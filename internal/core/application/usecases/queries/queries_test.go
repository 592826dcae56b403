package queries_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/pkg/clock"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueriesTestSuite struct {
	suite.Suite
	ledger *services.OrderLedger
	at     time.Time
}

func (s *QueriesTestSuite) SetupTest() {
	s.at = time.Date(2026, 10, 18, 8, 15, 0, 0, time.UTC)
	s.ledger = services.NewOrderLedger(services.NewTokenSequence(1), clock.NewFixed(s.at))

	s.ledger.Place("Tea", 1, kernel.MustParseMoney("1.00"))
	s.ledger.Place("Coffee", 2, kernel.MustParseMoney("2.50"))
	s.ledger.Place("Bun", 1, kernel.MustParseMoney("0.75"))
	s.Require().True(s.ledger.Complete(2))
}

func (s *QueriesTestSuite) TestGetAllOrders() {
	h := queries.NewGetAllOrdersQueryHandler(s.ledger)

	rows, err := h.Handle(s.T().Context(), queries.NewGetAllOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal(kernel.Token(2), rows[1].Token)
	s.Equal("Coffee", rows[1].ItemName)
	s.Equal("5.00", rows[1].TotalPrice.StringFixed())
	s.Equal(order.Completed, rows[1].Status)
	s.Equal(s.at, rows[1].CreatedAt)
}

func (s *QueriesTestSuite) TestGetPendingOrders() {
	h := queries.NewGetPendingOrdersQueryHandler(s.ledger)

	rows, err := h.Handle(s.T().Context(), queries.NewGetPendingOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(kernel.Token(1), rows[0].Token)
	s.Equal(kernel.Token(3), rows[1].Token)
	for _, row := range rows {
		s.Equal(order.Pending, row.Status)
	}
}

func (s *QueriesTestSuite) TestGetReceipt() {
	h := queries.NewGetReceiptQueryHandler(s.ledger)
	query, err := queries.NewGetReceiptQuery(2)
	s.Require().NoError(err)

	receipt, err := h.Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Equal(queries.GetReceiptQueryResponse{
		Token:        2,
		ItemName:     "Coffee",
		Quantity:     2,
		PricePerItem: "$2.50",
		Total:        "$5.00",
		OrderTime:    "2026-10-18 08:15:00",
		Status:       "Completed",
	}, receipt)
}

func (s *QueriesTestSuite) TestGetReceipt_UnknownToken() {
	h := queries.NewGetReceiptQueryHandler(s.ledger)
	query, err := queries.NewGetReceiptQuery(42)
	s.Require().NoError(err)

	_, err = h.Handle(s.T().Context(), query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestHandlers_CancelledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	_, err := queries.NewGetAllOrdersQueryHandler(s.ledger).Handle(ctx, queries.NewGetAllOrdersQuery())
	s.Require().ErrorIs(err, context.Canceled)

	_, err = queries.NewGetPendingOrdersQueryHandler(s.ledger).Handle(ctx, queries.NewGetPendingOrdersQuery())
	s.Require().ErrorIs(err, context.Canceled)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	ledger := services.NewOrderLedger(nil, nil)
	ctx := t.Context()

	_, err := queries.NewGetAllOrdersQueryHandler(ledger).Handle(ctx, queries.GetAllOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)

	_, err = queries.NewGetPendingOrdersQueryHandler(ledger).Handle(ctx, queries.GetPendingOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)

	_, err = queries.NewGetReceiptQueryHandler(ledger).Handle(ctx, queries.GetReceiptQuery{})
	require.ErrorIs(t, err, queries.ErrGetReceiptQueryIsNotConstructed)
}

func TestNewGetReceiptQuery_InvalidToken(t *testing.T) {
	_, err := queries.NewGetReceiptQuery(-1)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetPendingOrders_EmptyLedger(t *testing.T) {
	h := queries.NewGetPendingOrdersQueryHandler(services.NewOrderLedger(nil, nil))

	rows, err := h.Handle(t.Context(), queries.NewGetPendingOrdersQuery())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
