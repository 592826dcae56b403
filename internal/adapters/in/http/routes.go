package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers of api/openapi.yml.
type ServerInterface interface {
	// List all orders in placement order
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// Place an order and receive a token
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Stream order notifications as server-sent events
	// (GET /api/v1/orders/events)
	StreamOrderEvents(ctx echo.Context) error
	// List orders still waiting to be served
	// (GET /api/v1/orders/pending)
	GetPendingOrders(ctx echo.Context) error
	// Mark an order as complete
	// (POST /api/v1/orders/{token}/complete)
	CompleteOrder(ctx echo.Context, token int64) error
	// Render the token slip of an order
	// (GET /api/v1/orders/{token}/receipt)
	GetReceipt(ctx echo.Context, token int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) StreamOrderEvents(ctx echo.Context) error {
	return w.Handler.StreamOrderEvents(ctx)
}

func (w *ServerInterfaceWrapper) GetPendingOrders(ctx echo.Context) error {
	return w.Handler.GetPendingOrders(ctx)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	token, err := bindToken(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, token)
}

func (w *ServerInterfaceWrapper) GetReceipt(ctx echo.Context) error {
	token, err := bindToken(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetReceipt(ctx, token)
}

func bindToken(ctx echo.Context) (int64, error) {
	var token int64

	err := runtime.BindStyledParameterWithOptions("simple", "token", ctx.Param("token"), &token,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter token: %s", err))
	}

	return token, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	RegisterHandlersWithBaseURL(router, si, "", m...)
}

// RegisterHandlersWithBaseURL registers the routes under baseURL with the
// route level middleware m.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, m ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders, m...)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder, m...)
	router.GET(baseURL+"/api/v1/orders/events", wrapper.StreamOrderEvents, m...)
	router.GET(baseURL+"/api/v1/orders/pending", wrapper.GetPendingOrders, m...)
	router.POST(baseURL+"/api/v1/orders/:token/complete", wrapper.CompleteOrder, m...)
	router.GET(baseURL+"/api/v1/orders/:token/receipt", wrapper.GetReceipt, m...)
}
