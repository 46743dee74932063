package coupon

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"giglane/internal/domain"
	"giglane/internal/store"
	"giglane/internal/validator"
	"giglane/pkg/errutil"
)

// Service owns the coupon collection: validation, discount math, and the
// usage counter. Redemption commits under the coupon lock before the order
// is persisted; Release is the compensating decrement for a failed order.
type Service struct {
	coupons *store.Collection[domain.Coupon]
}

type Params struct {
	fx.In
	Store *store.Store
}

func NewService(p Params) *Service {
	return &Service{
		coupons: store.NewCollection[domain.Coupon](p.Store, "coupons"),
	}
}

func (s *Service) Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	c.Active = true
	c.UsedCount = 0
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if err := validator.Check(&c); err != nil {
		return nil, err
	}

	err := s.coupons.Mutate(ctx, func(items []domain.Coupon) ([]domain.Coupon, error) {
		for i := range items {
			if items[i].Code == c.Code {
				return nil, errutil.Conflict("coupon code already exists")
			}
		}
		return append(items, c), nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Deactivate(ctx context.Context, code string) (*domain.Coupon, error) {
	var out domain.Coupon
	err := s.coupons.Mutate(ctx, func(items []domain.Coupon) ([]domain.Coupon, error) {
		for i := range items {
			if items[i].Code == code {
				items[i].Active = false
				out = items[i]
				return items, nil
			}
		}
		return nil, errutil.NotFound("coupon not found")
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks a coupon is usable at the given instant without touching
// the usage counter.
func (s *Service) Validate(ctx context.Context, code string, now time.Time) (*domain.Coupon, error) {
	items, err := s.coupons.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Code == code {
			if err := usable(&items[i], now); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
	}
	return nil, errutil.NotFound("coupon not found")
}

// ComputeDiscount is pure and idempotent. Percentage coupons floor; amount
// coupons cap at the gross so the discount can never exceed the order.
func ComputeDiscount(c *domain.Coupon, grossAmount int64) int64 {
	switch c.Kind {
	case domain.CouponPercentage:
		return grossAmount * c.Value / 100
	case domain.CouponAmount:
		if c.Value > grossAmount {
			return grossAmount
		}
		return c.Value
	}
	return 0
}

// Redeem increments the usage counter by exactly one. Re-validates inside
// the collection lock so concurrent redemptions at the limit boundary admit
// exactly one caller.
func (s *Service) Redeem(ctx context.Context, code string, now time.Time) (*domain.Coupon, error) {
	var out domain.Coupon
	err := s.coupons.Mutate(ctx, func(items []domain.Coupon) ([]domain.Coupon, error) {
		for i := range items {
			if items[i].Code != code {
				continue
			}
			if err := usable(&items[i], now); err != nil {
				return nil, err
			}
			items[i].UsedCount++
			out = items[i]
			return items, nil
		}
		return nil, errutil.NotFound("coupon not found")
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Release undoes one redemption after the paired order failed to persist.
func (s *Service) Release(ctx context.Context, code string) error {
	err := s.coupons.Mutate(ctx, func(items []domain.Coupon) ([]domain.Coupon, error) {
		for i := range items {
			if items[i].Code == code {
				if items[i].UsedCount > 0 {
					items[i].UsedCount--
				}
				return items, nil
			}
		}
		return nil, errutil.NotFound("coupon not found")
	})
	if err != nil {
		zap.L().Error("failed to release coupon redemption", zap.String("code", code), zap.Error(err))
	}
	return err
}

func usable(c *domain.Coupon, now time.Time) error {
	if !c.Active {
		return errutil.Conflict("coupon inactive")
	}
	if c.Expiry.Before(now) {
		return errutil.Conflict("coupon expired")
	}
	if c.UsedCount >= c.UsageLimit {
		return errutil.Conflict("coupon exhausted")
	}
	return nil
}
