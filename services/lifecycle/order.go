package lifecycle

import (
	"context"
	"fmt"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
	"giglane/services/coupon"
)

type CreateOrderInput struct {
	ServiceID  string `json:"service_id"`
	CouponCode string `json:"coupon_code,omitempty"`
}

// CreateOrder resolves the price from the listing, redeems the coupon if one
// is given, and books the order with the fee applied to the discounted
// amount. The coupon counter is committed first; if the order itself fails
// to persist the redemption is released again.
func (s *Service) CreateOrder(ctx context.Context, actor domain.Actor, in CreateOrderInput) (*domain.Event, error) {
	now := s.now()

	listing, err := s.findListing(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !listing.Active {
		return nil, errutil.Conflict("listing is not active")
	}
	if listing.SellerID == actor.ID {
		return nil, errutil.Conflict("cannot order your own listing")
	}

	// all fallible pre-work happens before the coupon counter commits;
	// after Redeem the only remaining step is the order append, and that
	// one is paired with a compensating Release
	code, err := s.seq.NextOrderCode(ctx)
	if err != nil {
		return nil, errutil.Persistence("failed to issue order code", err)
	}

	gross := listing.Price
	var discount int64
	if in.CouponCode != "" {
		c, err := s.coupons.Redeem(ctx, in.CouponCode, now)
		if err != nil {
			return nil, err
		}
		discount = coupon.ComputeDiscount(c, gross)
	}
	fee := (gross - discount) * s.fee / 100

	order := domain.Order{
		OrderID:           s.newID(),
		OrderCode:         code,
		BuyerID:           actor.ID,
		SellerID:          listing.SellerID,
		ServiceID:         listing.ListingID,
		GrossAmount:       gross,
		DiscountAmount:    discount,
		PlatformFeeAmount: fee,
		NetSellerAmount:   gross - discount - fee,
		CouponCode:        in.CouponCode,
		Status:            domain.StatusPending,
		CreatedAt:         now,
	}

	evt, err := create[domain.Order](ctx, s.orders, now, order, nil)
	if err != nil {
		if in.CouponCode != "" {
			_ = s.coupons.Release(ctx, in.CouponCode)
		}
		return nil, err
	}
	return evt, nil
}

func (s *Service) findListing(ctx context.Context, id string) (*domain.Listing, error) {
	listings, err := s.listings.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ListingID == id {
			return &listings[i], nil
		}
	}
	return nil, errutil.NotFound(fmt.Sprintf("listing %s not found", id))
}

func (s *Service) AcceptOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Event, error) {
	return transition[domain.Order](ctx, s.orders, s.now(), orderID, domain.StatusInProgress, func(o *domain.Order) error {
		if o.SellerID != actor.ID {
			return errutil.Authorization("only the order's seller may accept it")
		}
		if o.Status != domain.StatusPending {
			return errutil.Transition("order can only be accepted while pending")
		}
		return nil
	})
}

// DeliverOrder records a delivery. The order stays in progress; completion
// is the buyer's call.
func (s *Service) DeliverOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Event, error) {
	now := s.now()
	return transition[domain.Order](ctx, s.orders, now, orderID, domain.StatusInProgress, func(o *domain.Order) error {
		if o.SellerID != actor.ID {
			return errutil.Authorization("only the order's seller may deliver it")
		}
		if o.Status != domain.StatusInProgress {
			return errutil.Transition("order must be in progress to deliver")
		}
		o.DeliveryCount++
		o.DeliveredAt = &now
		return nil
	})
}

func (s *Service) RequestRevision(ctx context.Context, actor domain.Actor, orderID string) (*domain.Event, error) {
	return transition[domain.Order](ctx, s.orders, s.now(), orderID, domain.StatusInProgress, func(o *domain.Order) error {
		if o.BuyerID != actor.ID {
			return errutil.Authorization("only the order's buyer may request a revision")
		}
		if o.Status != domain.StatusInProgress {
			return errutil.Transition("order must be in progress to request a revision")
		}
		if o.DeliveredAt == nil {
			return errutil.Conflict("nothing delivered to revise")
		}
		// back to work: the next approval needs a fresh delivery
		o.DeliveredAt = nil
		return nil
	})
}

func (s *Service) ApproveDelivery(ctx context.Context, actor domain.Actor, orderID string) (*domain.Event, error) {
	now := s.now()
	return transition[domain.Order](ctx, s.orders, now, orderID, domain.StatusCompleted, func(o *domain.Order) error {
		if o.BuyerID != actor.ID {
			return errutil.Authorization("only the order's buyer may approve delivery")
		}
		if o.DeliveredAt == nil {
			return errutil.Conflict("nothing delivered to approve")
		}
		o.CompletedAt = &now
		return nil
	})
}

// CancelOrder: buyers may cancel their own pending orders; admins may cancel
// any order that has not completed.
func (s *Service) CancelOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Event, error) {
	return transition[domain.Order](ctx, s.orders, s.now(), orderID, domain.StatusCancelled, func(o *domain.Order) error {
		if actor.Role == domain.RoleAdmin {
			return nil
		}
		if o.BuyerID != actor.ID {
			return errutil.Authorization("only the order's buyer may cancel it")
		}
		if o.Status != domain.StatusPending {
			return errutil.Conflict("buyers may only cancel pending orders")
		}
		return nil
	})
}
