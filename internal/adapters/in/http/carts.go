package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type AddCartItemRequest struct {
	OptionID kernel.UUID `json:"optionId"`
	Quantity int         `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/v1/users/{userId}/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	userID, err := uuidParam(ctx, "userId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(userID)
	if err != nil {
		return err
	}

	view, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// AddCartItem handles POST /api/v1/users/{userId}/cart/items. The cart is
// created on the first item.
func (s *Server) AddCartItem(ctx echo.Context) error {
	userID, err := uuidParam(ctx, "userId")
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(userID, req.OptionID, req.Quantity)
	if err != nil {
		return err
	}

	view, err := s.h.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// UpdateCartItemQuantity handles PATCH /api/v1/cart/items/{lineId}.
// The quantity must be positive; use DELETE to drop a line.
func (s *Server) UpdateCartItemQuantity(ctx echo.Context) error {
	lineID, err := uuidParam(ctx, "lineId")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(lineID, req.Quantity)
	if err != nil {
		return err
	}

	view, err := s.h.UpdateCartItemQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{lineId}.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	lineID, err := uuidParam(ctx, "lineId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(lineID)
	if err != nil {
		return err
	}

	view, err := s.h.RemoveCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// ClearCart handles DELETE /api/v1/users/{userId}/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	userID, err := uuidParam(ctx, "userId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(userID)
	if err != nil {
		return err
	}

	if err := s.h.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	return id, nil
}
