// Package http exposes the shop's order and account operations over a JSON
// API. It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"solarstore/internal/core/application/usecases/commands"
	"solarstore/internal/core/application/usecases/queries"
	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires the HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	updateAccountHandler     commands.UpdateAccountCommandHandler

	// Query handlers
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	getAccountHandler   queries.GetAccountQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateAccountHandler commands.UpdateAccountCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getAccountHandler queries.GetAccountQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		updateAccountHandler:     updateAccountHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getAccountHandler:        getAccountHandler,
	}
}

// RegisterRoutes mounts the API routes. The admin middleware guards the
// routes that mutate order status or account details.
func (s *Server) RegisterRoutes(e *echo.Echo, admin echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/order", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus, admin)
	api.GET("/account", s.GetAccount)
	api.PUT("/account", s.UpdateAccount, admin)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/order - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	cart := make([]commands.CartItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		cart = append(cart, commands.CartItem{
			Name:      line.Name,
			UnitPrice: decimal.NewFromFloat(line.Price),
			Quantity:  line.Quantity,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.Name, req.Email, req.Phone, req.Address,
		cart, decimal.NewFromFloat(req.TotalPrice))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid order data: " + err.Error()})
	}

	aggregate, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placeOrderResponse{
		Message: "Order placed successfully",
		Order:   orderFromAggregate(aggregate),
	})
}

// GetOrders handles GET /api/orders - lists orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	search := ctx.QueryParam("search")

	query := queries.NewGetOrdersQuery(page, limit, search)

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	orders := make([]orderResponse, 0, len(result.Orders))
	for _, view := range result.Orders {
		orders = append(orders, orderFromView(view))
	}

	return ctx.JSON(http.StatusOK, listOrdersResponse{
		Orders:      orders,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// GetOrderByID handles GET /api/orders/:id - fetches a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid order id"})
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid order id"})
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status - moves an order to a
// new lifecycle status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid order id"})
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.OrderStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid status value"})
	}

	aggregate, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updateOrderStatusResponse{
		Message: "Order status updated",
		Order:   orderFromAggregate(aggregate),
	})
}

// GetAccount handles GET /api/account - returns the bank account details.
// A deployment without a configured account answers 404; the "Not available"
// placeholder is an invoice/mail concern and never leaks out of this API.
func (s *Server) GetAccount(ctx echo.Context) error {
	result, err := s.getAccountHandler.Handle(ctx.Request().Context(), queries.NewGetAccountQuery())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{Message: "Account details not found"})
		}
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, accountResponse{
		AccountNumber: result.AccountNumber,
		BankName:      result.BankName,
		AccountName:   result.AccountName,
	})
}

// UpdateAccount handles PUT /api/account - creates or replaces the bank
// account details.
func (s *Server) UpdateAccount(ctx echo.Context) error {
	var req updateAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewUpdateAccountCommand(req.AccountNumber, req.BankName, req.AccountName)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid account data: " + err.Error()})
	}

	if err = s.updateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Account details updated"})
}

// errorJSON maps application errors onto HTTP statuses. Uniqueness conflicts
// on the order number deliberately map to 500: they indicate a broken counter
// invariant, not a client mistake.
func (s *Server) errorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Message: "Order not found"})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}
