package lifecycle

import (
	"context"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

type SubmitReviewInput struct {
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// SubmitReview: one review per completed order, by its buyer.
func (s *Service) SubmitReview(ctx context.Context, actor domain.Actor, in SubmitReviewInput) (*domain.Event, error) {
	now := s.now()

	order, err := s.findOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != actor.ID {
		return nil, errutil.Authorization("only the order's buyer may review it")
	}
	if order.Status != domain.StatusCompleted {
		return nil, errutil.Conflict("only completed orders can be reviewed")
	}

	review := domain.Review{
		ReviewID:  s.newID(),
		OrderID:   order.OrderID,
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Status:    domain.StatusVisible,
		CreatedAt: now,
	}
	return create[domain.Review](ctx, s.reviews, now, review, func(items []domain.Review) error {
		for i := range items {
			if items[i].OrderID == order.OrderID {
				return errutil.Conflict("order already has a review")
			}
		}
		return nil
	})
}

// ReplyReview lets the seller attach one reply; the review stays visible.
func (s *Service) ReplyReview(ctx context.Context, actor domain.Actor, reviewID, reply string) (*domain.Event, error) {
	if reply == "" {
		return nil, errutil.Validation("invalid fields", errutil.Detail{Field: "reply", Message: "required"})
	}
	return transition[domain.Review](ctx, s.reviews, s.now(), reviewID, domain.StatusVisible, func(r *domain.Review) error {
		if r.SellerID != actor.ID {
			return errutil.Authorization("only the reviewed seller may reply")
		}
		if r.Status != domain.StatusVisible {
			return errutil.Conflict("cannot reply to a hidden review")
		}
		r.Reply = reply
		return nil
	})
}

func (s *Service) HideReview(ctx context.Context, actor domain.Actor, reviewID string) (*domain.Event, error) {
	return transition[domain.Review](ctx, s.reviews, s.now(), reviewID, domain.StatusHidden, nil)
}

func (s *Service) UnhideReview(ctx context.Context, actor domain.Actor, reviewID string) (*domain.Event, error) {
	return transition[domain.Review](ctx, s.reviews, s.now(), reviewID, domain.StatusVisible, func(r *domain.Review) error {
		if r.Status != domain.StatusHidden {
			return errutil.Conflict("review is not hidden")
		}
		return nil
	})
}
