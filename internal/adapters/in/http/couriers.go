package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RegisterCourierRequest struct {
	Name   string          `json:"name"`
	Phone  string          `json:"phone"`
	Rating decimal.Decimal `json:"rating"`
}

type UpdateCourierStatusRequest struct {
	Status courier.Status `json:"status"`
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.h.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, couriers)
}

// RegisterCourier handles POST /api/v1/couriers. New couriers start OFFLINE.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req RegisterCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterCourierCommand(req.Name, req.Phone, req.Rating)
	if err != nil {
		return err
	}

	if err := s.h.RegisterCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.CourierID().String()})
}

// UpdateCourierStatus handles PATCH /api/v1/couriers/{courierId}/status.
func (s *Server) UpdateCourierStatus(ctx echo.Context) error {
	courierID, err := uuidParam(ctx, "courierId")
	if err != nil {
		return err
	}

	var req UpdateCourierStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCourierStatusCommand(courierID, req.Status)
	if err != nil {
		return err
	}

	if err := s.h.UpdateCourierStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierOrders handles GET /api/v1/couriers/{courierId}/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := uuidParam(ctx, "courierId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetCourierActiveOrdersQuery(courierID)
	if err != nil {
		return err
	}

	orders, err := s.h.GetCourierActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}
