package coupon

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"giglane/internal/domain"
	"giglane/internal/store"
	"giglane/internal/testutil"
	"giglane/pkg/errutil"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return &Service{coupons: store.NewCollection[domain.Coupon](testutil.NewStore(t), "coupons")}
}

func percentCoupon(code string, value, limit int64) domain.Coupon {
	return domain.Coupon{
		Code:       code,
		Kind:       domain.CouponPercentage,
		Value:      value,
		UsageLimit: limit,
		Expiry:     time.Now().Add(24 * time.Hour),
	}
}

func TestCreateCoupon(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, percentCoupon("WELCOME10", 10, 100))
	require.NoError(t, err)
	require.True(t, c.Active)
	require.Zero(t, c.UsedCount)

	_, err = svc.Create(ctx, percentCoupon("WELCOME10", 10, 100))
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))
}

func TestCreateCouponRejectsBadPercentage(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), percentCoupon("BROKEN", 150, 10))
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))
}

func TestComputeDiscount(t *testing.T) {
	pct := &domain.Coupon{Kind: domain.CouponPercentage, Value: 10}
	require.Equal(t, int64(25000), ComputeDiscount(pct, 250000))

	// floor, never round up
	pct.Value = 33
	require.Equal(t, int64(3299), ComputeDiscount(pct, 9999))

	amt := &domain.Coupon{Kind: domain.CouponAmount, Value: 5000}
	require.Equal(t, int64(5000), ComputeDiscount(amt, 250000))

	// cap at gross
	require.Equal(t, int64(3000), ComputeDiscount(amt, 3000))
}

func TestValidateCoupon(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Validate(ctx, "NOPE", now)
	require.Equal(t, errutil.KindNotFound, errutil.KindOf(err))

	_, err = svc.Create(ctx, percentCoupon("OK10", 10, 1))
	require.NoError(t, err)

	c, err := svc.Validate(ctx, "OK10", now)
	require.NoError(t, err)
	require.Equal(t, "OK10", c.Code)

	_, err = svc.Validate(ctx, "OK10", now.Add(48*time.Hour))
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	_, err = svc.Deactivate(ctx, "OK10")
	require.NoError(t, err)
	_, err = svc.Validate(ctx, "OK10", now)
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))
}

func TestRedeemAndRelease(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Create(ctx, percentCoupon("ONCE", 10, 1))
	require.NoError(t, err)

	c, err := svc.Redeem(ctx, "ONCE", now)
	require.NoError(t, err)
	require.Equal(t, int64(1), c.UsedCount)

	_, err = svc.Redeem(ctx, "ONCE", now)
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	require.NoError(t, svc.Release(ctx, "ONCE"))

	c, err = svc.Redeem(ctx, "ONCE", now)
	require.NoError(t, err)
	require.Equal(t, int64(1), c.UsedCount)
}

func TestConcurrentRedemptionAtLimit(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := time.Now()

	_, err := svc.Create(ctx, percentCoupon("LAST1", 10, 1))
	require.NoError(t, err)

	var succeeded atomic.Int64
	var conflicted atomic.Int64

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := svc.Redeem(ctx, "LAST1", now)
			switch errutil.KindOf(err) {
			case "":
				succeeded.Add(1)
			case errutil.KindConflict:
				conflicted.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, int64(1), succeeded.Load())
	require.Equal(t, int64(15), conflicted.Load())

	c, err := svc.Validate(ctx, "LAST1", now)
	require.Error(t, err)
	require.Nil(t, c)
}
