package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

type CreatePaymentRequest struct {
	OrderID kernel.UUID    `json:"orderId"`
	Method  payment.Method `json:"method"`
}

type UpdatePaymentStatusRequest struct {
	Status payment.Status `json:"status"`
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var req CreatePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentCommand(req.OrderID, req.Method)
	if err != nil {
		return err
	}

	if err := s.h.CreatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithPayment(ctx, http.StatusCreated, cmd.PaymentID())
}

// GetPayment handles GET /api/v1/payments/{paymentId}.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := uuidParam(ctx, "paymentId")
	if err != nil {
		return err
	}
	return s.respondWithPayment(ctx, http.StatusOK, paymentID)
}

// UpdatePaymentStatus handles PATCH /api/v1/payments/{paymentId}/status.
// This is the entry point of payment provider callbacks.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	paymentID, err := uuidParam(ctx, "paymentId")
	if err != nil {
		return err
	}

	var req UpdatePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, req.Status)
	if err != nil {
		return err
	}

	if err := s.h.UpdatePaymentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithPayment(ctx, http.StatusOK, paymentID)
}

func (s *Server) respondWithPayment(ctx echo.Context, code int, paymentID kernel.UUID) error {
	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return err
	}

	p, err := s.h.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, p)
}
