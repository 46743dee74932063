package command

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"

	"giglane/internal/domain"
	"giglane/internal/testutil"
	"giglane/pkg/config"
	"giglane/pkg/errutil"
	"giglane/pkg/sequence"
	"giglane/services/coupon"
	"giglane/services/lifecycle"
)

type capturePublisher struct {
	events []domain.Event
}

func (p *capturePublisher) Publish(ctx context.Context, evt domain.Event) error {
	p.events = append(p.events, evt)
	return nil
}

func newDispatcher(t *testing.T) (*Service, *capturePublisher) {
	t.Helper()

	st := testutil.NewStore(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Platform.FeePercent = 10

	engine := lifecycle.NewService(lifecycle.Params{
		Store:   st,
		Node:    node,
		Seq:     sequence.NewMemoryGenerator(),
		Coupons: coupon.NewService(coupon.Params{Store: st}),
		Config:  cfg,
	})
	pub := &capturePublisher{}
	return NewService(Params{Engine: engine, Publisher: pub}), pub
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestExecuteUnknownCommand(t *testing.T) {
	svc, _ := newDispatcher(t)

	actor := domain.Actor{ID: "u1", Role: domain.RoleAdmin}
	_, err := svc.Execute(context.Background(), "ExplodeOrder", actor, nil)
	require.Equal(t, errutil.KindNotFound, errutil.KindOf(err))
}

func TestExecuteRequiresActor(t *testing.T) {
	svc, _ := newDispatcher(t)

	_, err := svc.Execute(context.Background(), domain.CmdOpenTicket, domain.Actor{Role: domain.RoleBuyer}, nil)
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))
}

func TestExecuteForbiddenRole(t *testing.T) {
	svc, pub := newDispatcher(t)

	buyer := domain.Actor{ID: "buyer-1", Role: domain.RoleBuyer}
	_, err := svc.Execute(context.Background(), domain.CmdApprovePayout, buyer, mustJSON(t, PayoutRef{PayoutID: "p1"}))
	require.Equal(t, errutil.KindAuthorization, errutil.KindOf(err))
	require.Empty(t, pub.events)
}

func TestExecuteMalformedPayload(t *testing.T) {
	svc, _ := newDispatcher(t)

	seller := domain.Actor{ID: "seller-1", Role: domain.RoleSeller}
	_, err := svc.Execute(context.Background(), domain.CmdCreateListing, seller, json.RawMessage(`{"price":`))
	require.Equal(t, errutil.KindValidation, errutil.KindOf(err))
}

func TestExecutePublishesEvents(t *testing.T) {
	svc, pub := newDispatcher(t)
	ctx := context.Background()

	seller := domain.Actor{ID: "seller-1", Role: domain.RoleSeller}
	buyer := domain.Actor{ID: "buyer-1", Role: domain.RoleBuyer}

	evt, err := svc.Execute(ctx, domain.CmdCreateListing, seller, mustJSON(t, lifecycle.CreateListingInput{Title: "SEO audit", Price: 80000}))
	require.NoError(t, err)
	require.Equal(t, domain.KindListing, evt.Kind)

	orderEvt, err := svc.Execute(ctx, domain.CmdCreateOrder, buyer, mustJSON(t, lifecycle.CreateOrderInput{ServiceID: evt.EntityID}))
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, orderEvt.NewStatus)

	acceptEvt, err := svc.Execute(ctx, domain.CmdAcceptOrder, seller, mustJSON(t, OrderRef{OrderID: orderEvt.EntityID}))
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, acceptEvt.NewStatus)

	require.Len(t, pub.events, 3)
	require.Equal(t, domain.StatusPending, pub.events[1].NewStatus)
	require.Equal(t, domain.StatusInProgress, pub.events[2].NewStatus)
}

func TestExecuteRejectedCommandPublishesNothing(t *testing.T) {
	svc, pub := newDispatcher(t)

	admin := domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	_, err := svc.Execute(context.Background(), domain.CmdResolveDispute, admin, mustJSON(t, DisputeRef{DisputeID: "missing"}))
	require.Equal(t, errutil.KindNotFound, errutil.KindOf(err))
	require.Empty(t, pub.events)
}
