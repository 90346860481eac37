// Package http exposes the order management API over echo. Handlers stay
// thin: they bind and convert wire DTOs, delegate to command and query
// handlers, and map typed core failures to the uniform error body.
package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		changeStatusHandler: changeStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes, the health probe and the
// swagger UI to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id/status", s.UpdateOrderStatus)
	e.POST("/orders/:id/cancel", s.CancelOrder)
}

// CreateOrder handles POST /orders.
//
//	@Summary		Create a new order
//	@Description	Create a new order for publications
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to be created"
//	@Success		200		{object}	OrderDTO
//	@Failure		400		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondErrorMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	if len(req.Items) == 0 {
		return respondErrorMessage(ctx, http.StatusBadRequest,
			"Order must contain at least one item")
	}

	lines, err := toDomainItems(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(placed))
}

// GetOrder handles GET /orders/:id.
//
//	@Summary		Get an order by ID
//	@Description	Retrieves an order's details by its ID
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"ID of the order to retrieve"
//	@Success		200	{object}	OrderDTO
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(found))
}

// ListOrders handles GET /orders.
//
//	@Summary		List all orders
//	@Description	Get a list of all orders in the system
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}	OrderDTO
//	@Router			/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		response = append(response, fromDomainOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /orders/:id/status.
//
//	@Summary		Update order status
//	@Description	Update the status of an existing order
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path		string	true	"ID of the order to update"
//	@Param			status	query		string	true	"New status for the order"	Enums(PENDING, SHIPPED, DELIVERED, CANCELLED)
//	@Success		200		{object}	OrderDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/orders/{id}/status [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var statusParam string
	err = runtime.BindQueryParameter("form", true, true, "status",
		ctx.QueryParams(), &statusParam)
	if err != nil {
		return respondErrorMessage(ctx, http.StatusBadRequest,
			"Query parameter status is required")
	}

	target, err := order.StatusFromString(statusParam)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(updated))
}

// CancelOrder handles POST /orders/:id/cancel.
//
//	@Summary		Cancel an order
//	@Description	Cancel an existing order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"ID of the order to cancel"
//	@Success		200	{object}	OrderDTO
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// The dedicated cancel affordance only refuses delivered orders.
		if isDeliveredCancellation(err) {
			return respondErrorMessage(ctx, http.StatusBadRequest,
				"Cannot cancel a delivered order")
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(cancelled))
}
