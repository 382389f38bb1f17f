package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// SubmitReviewCommandHandler stores a review of a delivered order together with
// the moderation verdict. A banned review is kept, not rejected.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      ports.Clock
	moderator  services.ReviewModerator
}

func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory, clock ports.Clock) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		moderator:  services.NewReviewModerator(),
	}
}

// Handle fails with errs.ErrForbidden when the order belongs to someone else,
// errs.ErrBusinessRuleViolation before delivery and errs.ErrAlreadyExists for a
// second review of the same order.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) (review.Verdict, error) {
	if err := cmd.Validate(); err != nil {
		return review.UnknownVerdict, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return review.UnknownVerdict, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return review.UnknownVerdict, err
	}
	if !o.UserID().IsEqual(cmd.UserID()) {
		return review.UnknownVerdict, errs.NewForbiddenError("order belongs to another user")
	}
	if o.Status() != order.Delivered {
		return review.UnknownVerdict, errs.NewBusinessRuleViolationError("only delivered orders can be reviewed")
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return review.UnknownVerdict, err
	}
	if exists {
		return review.UnknownVerdict, errs.NewAlreadyExistsError("review", o.ID())
	}

	userComments, err := reviewRepo.CommentsByUser(ctx, cmd.UserID())
	if err != nil {
		return review.UnknownVerdict, err
	}
	restaurantComments, err := reviewRepo.LatestCommentsByRestaurant(ctx, o.RestaurantID(), services.RestaurantHistoryDepth)
	if err != nil {
		return review.UnknownVerdict, err
	}

	verdict := h.moderator.Moderate(cmd.Comment(), userComments, restaurantComments)
	r, err := review.NewReview(
		cmd.ReviewID(),
		o.ID(),
		cmd.UserID(),
		o.RestaurantID(),
		cmd.Rating(),
		cmd.Comment(),
		verdict,
		h.clock.Now(),
	)
	if err != nil {
		return review.UnknownVerdict, err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return review.UnknownVerdict, err
	}

	if err = uow.Commit(ctx); err != nil {
		return review.UnknownVerdict, err
	}

	return verdict, nil
}
