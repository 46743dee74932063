package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

func TestSubmitReview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	orderID := newOrder(t, svc, 100000)
	_, err := svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 5})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	orderID = completedOrder(t, svc, 100000)

	_, err = svc.SubmitReview(ctx, seller, SubmitReviewInput{OrderID: orderID, Rating: 5})
	require.Equal(t, errutil.KindAuthorization, errutil.KindOf(err))

	_, err = svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 6})
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))

	evt, err := svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 5, Comment: "great work"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusVisible, evt.NewStatus)

	// one review per order
	_, err = svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 1})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))
}

func TestReplyReview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	orderID := completedOrder(t, svc, 100000)
	evt, err := svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 4})
	require.NoError(t, err)

	_, err = svc.ReplyReview(ctx, domain.Actor{ID: "seller-2", Role: domain.RoleSeller}, evt.EntityID, "thanks")
	require.Equal(t, errutil.KindAuthorization, errutil.KindOf(err))

	_, err = svc.ReplyReview(ctx, seller, evt.EntityID, "")
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))

	rEvt, err := svc.ReplyReview(ctx, seller, evt.EntityID, "thanks for the feedback")
	require.NoError(t, err)
	require.Equal(t, domain.StatusVisible, rEvt.NewStatus)

	reviews, err := svc.reviews.All(ctx)
	require.NoError(t, err)
	require.Equal(t, "thanks for the feedback", reviews[0].Reply)
}

func TestHideUnhideReview(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	orderID := completedOrder(t, svc, 100000)
	evt, err := svc.SubmitReview(ctx, buyer, SubmitReviewInput{OrderID: orderID, Rating: 1, Comment: "scam"})
	require.NoError(t, err)

	hEvt, err := svc.HideReview(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusHidden, hEvt.NewStatus)

	// hidden reviews take no replies
	_, err = svc.ReplyReview(ctx, seller, evt.EntityID, "not true")
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	uEvt, err := svc.UnhideReview(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusVisible, uEvt.NewStatus)

	_, err = svc.UnhideReview(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))
}
