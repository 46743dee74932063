package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

func TestOpenDispute(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	orderID := newOrder(t, svc, 100000)

	// no work has started, nothing to dispute
	_, err := svc.OpenDispute(ctx, buyer, OpenDisputeInput{OrderID: orderID, ReasonCode: "not_as_described", Amount: 50000})
	require.Equal(t, errutil.KindConflict, errutil.KindOf(err))

	_, err = svc.AcceptOrder(ctx, seller, orderID)
	require.NoError(t, err)

	stranger := domain.Actor{ID: "buyer-9", Role: domain.RoleBuyer}
	_, err = svc.OpenDispute(ctx, stranger, OpenDisputeInput{OrderID: orderID, ReasonCode: "not_as_described", Amount: 50000})
	require.Equal(t, errutil.KindAuthorization, errutil.KindOf(err))

	_, err = svc.OpenDispute(ctx, buyer, OpenDisputeInput{OrderID: orderID, ReasonCode: "not_as_described", Amount: 100001})
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))

	evt, err := svc.OpenDispute(ctx, buyer, OpenDisputeInput{OrderID: orderID, ReasonCode: "not_as_described", Amount: 50000})
	require.NoError(t, err)
	require.Equal(t, domain.KindDispute, evt.Kind)
	require.Equal(t, domain.StatusOpen, evt.NewStatus)
}

func TestDisputeLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	orderID := completedOrder(t, svc, 100000)
	evt, err := svc.OpenDispute(ctx, seller, OpenDisputeInput{OrderID: orderID, ReasonCode: "payment_issue"})
	require.NoError(t, err)

	// open disputes cannot be closed without a resolution
	_, err = svc.CloseDispute(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))

	_, err = svc.ResolveDispute(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	cEvt, err := svc.CloseDispute(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, cEvt.NewStatus)

	_, err = svc.ResolveDispute(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))
}

func TestFileReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.FileReport(ctx, buyer, FileReportInput{ReportedType: "planet", TargetID: "x", Reason: "spam"})
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))

	evt, err := svc.FileReport(ctx, buyer, FileReportInput{ReportedType: domain.ReportTargetUser, TargetID: "seller-1", Reason: "spam"})
	require.NoError(t, err)

	_, err = svc.DismissReport(ctx, admin, evt.EntityID)
	require.NoError(t, err)

	// dismissed is terminal
	_, err = svc.ResolveReport(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))
}

func TestResolveReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	evt, err := svc.FileReport(ctx, seller, FileReportInput{ReportedType: domain.ReportTargetReview, TargetID: "rev-1", Reason: "abusive"})
	require.NoError(t, err)

	rEvt, err := svc.ResolveReport(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusResolved, rEvt.NewStatus)
}

func TestTicketLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	evt, err := svc.OpenTicket(ctx, buyer, OpenTicketInput{Subject: "refund missing"})
	require.NoError(t, err)
	require.Equal(t, domain.StatusOpen, evt.NewStatus)

	// open → resolved skips triage
	_, err = svc.ResolveTicket(ctx, admin, evt.EntityID)
	require.Equal(t, errutil.KindTransition, errutil.KindOf(err))

	_, err = svc.AssignTicket(ctx, admin, evt.EntityID, "")
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))

	_, err = svc.AssignTicket(ctx, admin, evt.EntityID, "agent-7")
	require.NoError(t, err)
	_, err = svc.ResolveTicket(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	cEvt, err := svc.CloseTicket(ctx, admin, evt.EntityID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusClosed, cEvt.NewStatus)

	tickets, err := svc.tickets.All(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	require.Equal(t, "agent-7", tickets[0].Assignee)
	require.NotEmpty(t, tickets[0].TicketCode)
}
