package lifecycle

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

// 100000 gross at 10% fee leaves the seller 90000.
func TestRequestPayout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	completedOrder(t, svc, 100000)

	_, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 90001, Bank: "KB", Account: "110-1234"})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	evt, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 90000, Bank: "KB", Account: "110-1234"})
	require.NoError(t, err)
	require.Equal(t, domain.KindPayout, evt.Kind)
	require.Equal(t, domain.StatusPending, evt.NewStatus)
}

func TestPayoutDrainsBalanceToZero(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	completedOrder(t, svc, 100000)

	evt, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 90000, Bank: "KB", Account: "110-1234"})
	require.NoError(t, err)
	_, err = svc.ApprovePayout(ctx, admin, evt.EntityID)
	require.NoError(t, err)

	// balance is exactly zero now
	_, err = svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 1, Bank: "KB", Account: "110-1234"})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	cEvt, err := svc.CompletePayout(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, cEvt.NewStatus)

	// settling does not free the funds again
	_, err = svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 1, Bank: "KB", Account: "110-1234"})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))
}

// Two pending requests can both exist, but only one can be approved when the
// balance covers only one of them.
func TestConcurrentApprovalsSpendOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	completedOrder(t, svc, 100000)

	ids := make([]string, 2)
	for i := range ids {
		evt, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 90000, Bank: "KB", Account: "110-1234"})
		require.NoError(t, err)
		ids[i] = evt.EntityID
	}

	var approved atomic.Int64
	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			_, err := svc.ApprovePayout(ctx, admin, id)
			switch errutil.KindOf(err) {
			case "":
				approved.Add(1)
				return nil
			case errutil.KindConflict:
				return nil
			default:
				return err
			}
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int64(1), approved.Load())
}

func TestRejectPayout(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	completedOrder(t, svc, 100000)

	evt, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 50000, Bank: "KB", Account: "110-1234"})
	require.NoError(t, err)

	rEvt, err := svc.RejectPayout(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, rEvt.NewStatus)

	// a rejected request releases nothing because it reserved nothing
	_, err = svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 90000, Bank: "KB", Account: "110-1234"})
	require.NoError(t, err)

	// rejected is terminal
	_, err = svc.ApprovePayout(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))
}

func TestCompletePayoutRequiresApproval(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	completedOrder(t, svc, 100000)

	evt, err := svc.RequestPayout(ctx, seller, RequestPayoutInput{Amount: 1000, Bank: "KB", Account: "110-1234"})
	require.NoError(t, err)

	_, err = svc.CompletePayout(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))
}
