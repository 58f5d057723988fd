// Package http exposes the order lifecycle and dashboard reads over a JSON
// API. It coordinates between HTTP handlers and application use cases; all
// authorization beyond role framing happens in the application core.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	claimOrderHandler       commands.ClaimOrderCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	createProductHandler    commands.CreateProductCommandHandler

	// Query handlers
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
	riderOrdersHandler     queries.GetRiderOrdersQueryHandler
	vendorOrdersHandler    queries.GetVendorOrdersQueryHandler
	customerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	vendorProductsHandler  queries.GetVendorProductsQueryHandler

	// Change feed
	subscriber ports.OrderSubscriber
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	riderOrdersHandler queries.GetRiderOrdersQueryHandler,
	vendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	vendorProductsHandler queries.GetVendorProductsQueryHandler,
	subscriber ports.OrderSubscriber,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		claimOrderHandler:       claimOrderHandler,
		startDeliveryHandler:    startDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		cancelOrderHandler:      cancelOrderHandler,
		createProductHandler:    createProductHandler,
		availableOrdersHandler:  availableOrdersHandler,
		riderOrdersHandler:      riderOrdersHandler,
		vendorOrdersHandler:     vendorOrdersHandler,
		customerOrdersHandler:   customerOrdersHandler,
		vendorProductsHandler:   vendorProductsHandler,
		subscriber:              subscriber,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/start", s.StartDelivery)
	api.POST("/orders/:id/complete", s.CompleteDelivery)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/mine", s.GetMyOrders)
	api.GET("/orders/stream", s.StreamOrders)
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetMyProducts)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleCustomer)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor.ID(), productID,
		request.Quantity, request.DeliveryAddress, request.CustomerPhone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - rider claims a pending order.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleRider)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:id/start - rider picks up the order.
func (s *Server) StartDelivery(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleRider)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	if err = s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete - rider finishes the delivery.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleRider)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer or vendor
// withdraws an order that has not entered transit.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableOrders handles GET /api/v1/orders/available - the rider pool.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleRider)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	query, err := queries.NewGetAvailableOrdersQuery(actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	views, err := s.availableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetMyOrders handles GET /api/v1/orders/mine - the caller's role-scoped
// order list: assigned deliveries for riders, own purchases for customers,
// incoming product orders for vendors.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	requestCtx := ctx.Request().Context()

	switch actor.Role() {
	case viewer.RoleRider:
		query, queryErr := queries.NewGetRiderOrdersQuery(actor.ID())
		if queryErr != nil {
			return ctx.JSON(errorJSON(queryErr))
		}
		views, handleErr := s.riderOrdersHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return ctx.JSON(errorJSON(handleErr))
		}
		return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))

	case viewer.RoleCustomer:
		query, queryErr := queries.NewGetCustomerOrdersQuery(actor.ID())
		if queryErr != nil {
			return ctx.JSON(errorJSON(queryErr))
		}
		views, handleErr := s.customerOrdersHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return ctx.JSON(errorJSON(handleErr))
		}
		return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))

	case viewer.RoleVendor:
		query, queryErr := queries.NewGetVendorOrdersQuery(actor.ID())
		if queryErr != nil {
			return ctx.JSON(errorJSON(queryErr))
		}
		views, handleErr := s.vendorOrdersHandler.Handle(requestCtx, query)
		if handleErr != nil {
			return ctx.JSON(errorJSON(handleErr))
		}
		return ctx.JSON(http.StatusOK, orderResponsesFromViews(views))

	default:
		return ctx.JSON(errorJSON(ErrActorRoleMismatch))
	}
}

// CreateProduct handles POST /api/v1/products - vendor lists a product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleVendor)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	var request CreateProductRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.NewMoney(request.Price)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, actor.ID(),
		request.Name, request.Description, price, request.Stock, request.Category)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetMyProducts handles GET /api/v1/products - the vendor's own catalog.
func (s *Server) GetMyProducts(ctx echo.Context) error {
	actor, err := requireRole(ctx, viewer.RoleVendor)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	query, err := queries.NewGetVendorProductsQuery(actor.ID())
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	listings, err := s.vendorProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(errorJSON(err))
	}

	return ctx.JSON(http.StatusOK, productResponsesFrom(listings))
}
