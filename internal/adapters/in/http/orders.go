package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type CreateOrderRequest struct {
	CartID kernel.UUID `json:"cartId"`
}

// UpdateOrderStatusRequest carries the courier id when a courier reports progress.
type UpdateOrderStatusRequest struct {
	Status    order.Status `json:"status"`
	CourierID *kernel.UUID `json:"courierId,omitempty"`
}

type AssignOrderRequest struct {
	CourierID kernel.UUID `json:"courierId"`
}

// CreateOrder handles POST /api/v1/orders - checks out a cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(req.CartID)
	if err != nil {
		return err
	}

	if err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusCreated, cmd.OrderID())
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.h.GetUncompletedOrders.Handle(ctx.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// ListUserOrders handles GET /api/v1/users/{userId}/orders.
func (s *Server) ListUserOrders(ctx echo.Context) error {
	userID, err := uuidParam(ctx, "userId")
	if err != nil {
		return err
	}

	query, err := queries.NewListUserOrdersQuery(userID)
	if err != nil {
		return err
	}

	orders, err := s.h.ListUserOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	var cmd commands.UpdateOrderStatusCommand
	if req.CourierID != nil {
		cmd, err = commands.NewUpdateOrderStatusByCourierCommand(orderID, req.Status, *req.CourierID)
	} else {
		cmd, err = commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	}
	if err != nil {
		return err
	}

	if err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return err
	}

	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignOrderCommand(req.CourierID, orderID)
	if err != nil {
		return err
	}

	if err := s.h.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, o)
}
