package http

import (
	"fmt"
	"net/http"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"

	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// OrderSubscriber is the part of the ledger the event stream needs.
type OrderSubscriber interface {
	Subscribe(listener ports.OrderListener)
	Unsubscribe(listener ports.OrderListener)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler    commands.PlaceOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getReceiptHandler       queries.GetReceiptQueryHandler

	subscriber OrderSubscriber
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getReceiptHandler queries.GetReceiptQueryHandler,
	subscriber OrderSubscriber,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getReceiptHandler:       getReceiptHandler,
		subscriber:              subscriber,
	}
}

// PlaceOrder handles POST /api/v1/orders - submits the customer order form.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.ParseMoney(newOrder.UnitPrice)
	if err != nil {
		return errorResponse(ctx, err, "Invalid price")
	}

	cmd, err := commands.NewPlaceOrderCommand(newOrder.ItemName, newOrder.Quantity, price)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order data")
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, OrderPlaced{
		Token:   int64(placed.Token()),
		Message: fmt.Sprintf("Order placed - Token #%s", placed.Token()),
		Order:   orderFromDomain(placed),
	})
}

// GetOrders handles GET /api/v1/orders - retrieves every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending - the admin board.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve pending orders")
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// CompleteOrder handles POST /api/v1/orders/{token}/complete.
// Completing an order twice is not an error.
func (s *Server) CompleteOrder(ctx echo.Context, token int64) error {
	cmd, err := commands.NewCompleteOrderCommand(kernel.Token(token))
	if err != nil {
		return errorResponse(ctx, err, "Invalid token")
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReceipt handles GET /api/v1/orders/{token}/receipt - prints the token slip.
func (s *Server) GetReceipt(ctx echo.Context, token int64) error {
	query, err := queries.NewGetReceiptQuery(kernel.Token(token))
	if err != nil {
		return errorResponse(ctx, err, "Invalid token")
	}

	receipt, err := s.getReceiptHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to render receipt")
	}

	return ctx.String(http.StatusOK, RenderReceipt(receipt))
}
