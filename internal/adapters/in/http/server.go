// Package http exposes the dispatch, availability, query, and statistics
// operations over an echo server. Handlers translate between the JSON
// surface and the application layer; all authorization beyond the role
// check happens in the use cases through identity resolution.
package http

import (
	"net/http"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler
	markDeliveredHandler   commands.MarkDeliveredCommandHandler
	setDriverOnlineHandler commands.SetDriverOnlineCommandHandler
	setShopOpenHandler     commands.SetShopOpenCommandHandler

	// Query handlers
	getUnclaimedOrdersHandler  queries.GetUnclaimedOrdersQueryHandler
	getDriverOrdersHandler     queries.GetDriverOrdersQueryHandler
	getShopOrdersHandler       queries.GetShopOrdersQueryHandler
	getDriverStatisticsHandler queries.GetDriverStatisticsQueryHandler
	getShopStatisticsHandler   queries.GetShopStatisticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	setDriverOnlineHandler commands.SetDriverOnlineCommandHandler,
	setShopOpenHandler commands.SetShopOpenCommandHandler,
	getUnclaimedOrdersHandler queries.GetUnclaimedOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
	getShopOrdersHandler queries.GetShopOrdersQueryHandler,
	getDriverStatisticsHandler queries.GetDriverStatisticsQueryHandler,
	getShopStatisticsHandler queries.GetShopStatisticsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		markDeliveredHandler:       markDeliveredHandler,
		setDriverOnlineHandler:     setDriverOnlineHandler,
		setShopOpenHandler:         setShopOpenHandler,
		getUnclaimedOrdersHandler:  getUnclaimedOrdersHandler,
		getDriverOrdersHandler:     getDriverOrdersHandler,
		getShopOrdersHandler:       getShopOrdersHandler,
		getDriverStatisticsHandler: getDriverStatisticsHandler,
		getShopStatisticsHandler:   getShopStatisticsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/claim", s.ClaimOrder, RequireRole(RoleDriver))
	api.POST("/orders/:id/deliver", s.DeliverOrder, RequireRole(RoleDriver))
	api.GET("/orders/unclaimed", s.GetUnclaimedOrders, RequireRole(RoleDriver))

	api.PUT("/drivers/me/online", s.SetDriverOnline, RequireRole(RoleDriver))
	api.GET("/drivers/me/orders/in-flight", s.GetDriverInFlightOrders, RequireRole(RoleDriver))
	api.GET("/drivers/me/orders/delivered", s.GetDriverDeliveredOrders, RequireRole(RoleDriver))
	api.GET("/drivers/me/statistics", s.GetDriverStatistics, RequireRole(RoleDriver))

	api.POST("/shops/me/orders", s.CreateOrder, RequireRole(RoleShop))
	api.PUT("/shops/me/open", s.SetShopOpen, RequireRole(RoleShop))
	api.GET("/shops/me/orders/unclaimed", s.GetShopUnclaimedOrders, RequireRole(RoleShop))
	api.GET("/shops/me/orders/in-flight", s.GetShopInFlightOrders, RequireRole(RoleShop))
	api.GET("/shops/me/orders/delivered", s.GetShopDeliveredOrders, RequireRole(RoleShop))
	api.GET("/shops/me/statistics", s.GetShopStatistics, RequireRole(RoleShop))
}

// CreateOrder handles POST /api/v1/shops/me/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actorID(ctx),
		req.TotalCents,
		req.CommissionCents,
		req.Address,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivered))
}

// SetDriverOnline handles PUT /api/v1/drivers/me/online.
func (s *Server) SetDriverOnline(ctx echo.Context) error {
	var req SetOnlineRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetDriverOnlineCommand(actorID(ctx), req.Online)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setDriverOnlineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetShopOpen handles PUT /api/v1/shops/me/open.
func (s *Server) SetShopOpen(ctx echo.Context) error {
	var req SetOpenRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetShopOpenCommand(actorID(ctx), req.Open)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setShopOpenHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnclaimedOrders handles GET /api/v1/orders/unclaimed.
func (s *Server) GetUnclaimedOrders(ctx echo.Context) error {
	query, err := queries.NewGetUnclaimedOrdersQuery(actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getUnclaimedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]UnclaimedOrderEntry, len(resp.Orders))
	for i, view := range resp.Orders {
		orders[i] = UnclaimedOrderEntry{
			ID:              view.ID,
			ShopID:          view.ShopID,
			CreatedAt:       view.CreatedAt,
			TotalCents:      view.TotalCents,
			CommissionCents: view.CommissionCents,
			Address:         view.Address,
		}
	}

	return ctx.JSON(http.StatusOK, UnclaimedOrdersResponse{
		DriverOnline: resp.DriverOnline,
		Orders:       orders,
	})
}

// GetDriverInFlightOrders handles GET /api/v1/drivers/me/orders/in-flight.
func (s *Server) GetDriverInFlightOrders(ctx echo.Context) error {
	return s.getDriverOrders(ctx, queries.ScopeInFlight)
}

// GetDriverDeliveredOrders handles GET /api/v1/drivers/me/orders/delivered.
func (s *Server) GetDriverDeliveredOrders(ctx echo.Context) error {
	return s.getDriverOrders(ctx, queries.ScopeDelivered)
}

func (s *Server) getDriverOrders(ctx echo.Context, scope queries.OrderScope) error {
	query, err := queries.NewGetDriverOrdersQuery(actorID(ctx), scope)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]OrderResponse, len(views))
	for i, view := range views {
		status := "Claimed"
		if view.Delivered {
			status = "Delivered"
		}

		orders[i] = OrderResponse{
			ID:              view.ID,
			ShopID:          view.ShopID,
			CreatedAt:       view.CreatedAt,
			TotalCents:      view.TotalCents,
			CommissionCents: view.CommissionCents,
			Address:         view.Address,
			Status:          status,
		}
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetShopUnclaimedOrders handles GET /api/v1/shops/me/orders/unclaimed.
func (s *Server) GetShopUnclaimedOrders(ctx echo.Context) error {
	return s.getShopOrders(ctx, queries.ScopeUnclaimed)
}

// GetShopInFlightOrders handles GET /api/v1/shops/me/orders/in-flight.
func (s *Server) GetShopInFlightOrders(ctx echo.Context) error {
	return s.getShopOrders(ctx, queries.ScopeInFlight)
}

// GetShopDeliveredOrders handles GET /api/v1/shops/me/orders/delivered.
func (s *Server) GetShopDeliveredOrders(ctx echo.Context) error {
	return s.getShopOrders(ctx, queries.ScopeDelivered)
}

func (s *Server) getShopOrders(ctx echo.Context, scope queries.OrderScope) error {
	query, err := queries.NewGetShopOrdersQuery(actorID(ctx), scope)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getShopOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	orders := make([]OrderResponse, len(resp.Orders))
	for i, view := range resp.Orders {
		status := "Unclaimed"
		switch {
		case view.Delivered:
			status = "Delivered"
		case view.DriverID != nil:
			status = "Claimed"
		}

		orders[i] = OrderResponse{
			ID:              view.ID,
			DriverID:        view.DriverID,
			CreatedAt:       view.CreatedAt,
			TotalCents:      view.TotalCents,
			CommissionCents: view.CommissionCents,
			Address:         view.Address,
			Status:          status,
		}
	}

	return ctx.JSON(http.StatusOK, ShopOrdersResponse{
		ShopOpen: resp.ShopOpen,
		Orders:   orders,
	})
}

// GetDriverStatistics handles GET /api/v1/drivers/me/statistics.
func (s *Server) GetDriverStatistics(ctx echo.Context) error {
	query, err := queries.NewGetDriverStatisticsQuery(actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getDriverStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatisticsResponse{
		HasOrders:       stats.HasOrders,
		OrderCount:      stats.OrderCount,
		TotalCents:      stats.TotalCents,
		CommissionCents: stats.CommissionCents,
	})
}

// GetShopStatistics handles GET /api/v1/shops/me/statistics.
func (s *Server) GetShopStatistics(ctx echo.Context) error {
	query, err := queries.NewGetShopStatisticsQuery(actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getShopStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	net := stats.NetCents
	return ctx.JSON(http.StatusOK, StatisticsResponse{
		HasOrders:       stats.HasOrders,
		OrderCount:      stats.OrderCount,
		TotalCents:      stats.TotalCents,
		CommissionCents: stats.CommissionCents,
		NetCents:        &net,
	})
}
