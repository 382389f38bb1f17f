package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/review"

	"github.com/labstack/echo/v4"
)

type SubmitReviewRequest struct {
	UserID  kernel.UUID `json:"userId"`
	OrderID kernel.UUID `json:"orderId"`
	Rating  int         `json:"rating"`
	Comment string      `json:"comment"`
}

type ModerateReviewRequest struct {
	UserID       kernel.UUID `json:"userId"`
	RestaurantID kernel.UUID `json:"restaurantId"`
	Comment      string      `json:"comment"`
}

type ReviewResponse struct {
	ID      string         `json:"id,omitempty"`
	Verdict review.Verdict `json:"verdict"`
}

// SubmitReview handles POST /api/v1/reviews. A banned review is still stored
// and reported with its verdict.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitReviewCommand(req.UserID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		return err
	}

	verdict, err := s.h.SubmitReview.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ReviewResponse{ID: cmd.ReviewID().String(), Verdict: verdict})
}

// ModerateReview handles POST /api/v1/reviews/moderation. Nothing is stored.
func (s *Server) ModerateReview(ctx echo.Context) error {
	var req ModerateReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	query, err := queries.NewModerateReviewQuery(req.Comment, req.UserID, req.RestaurantID)
	if err != nil {
		return err
	}

	verdict, err := s.h.ModerateReview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ReviewResponse{Verdict: verdict})
}
