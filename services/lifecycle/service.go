package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"giglane/internal/domain"
	"giglane/internal/store"
	"giglane/internal/validator"
	"giglane/pkg/config"
	"giglane/pkg/errutil"
	"giglane/pkg/sequence"
	"giglane/services/coupon"
)

// Service applies lifecycle commands. Every mutation is a check-then-commit
// critical section on the entity's collection: status legality, ownership,
// and field constraints are all verified under the lock, and a rejected
// command leaves the collection untouched.
type Service struct {
	node    *snowflake.Node
	seq     sequence.Generator
	coupons *coupon.Service
	fee     int64
	now     func() time.Time

	orders    *store.Collection[domain.Order]
	payouts   *store.Collection[domain.Payout]
	disputes  *store.Collection[domain.Dispute]
	reports   *store.Collection[domain.Report]
	tickets   *store.Collection[domain.SupportTicket]
	proposals *store.Collection[domain.Proposal]
	reviews   *store.Collection[domain.Review]
	listings  *store.Collection[domain.Listing]
	projects  *store.Collection[domain.Project]
}

type Params struct {
	fx.In

	Store   *store.Store
	Node    *snowflake.Node
	Seq     sequence.Generator
	Coupons *coupon.Service
	Config  *config.Config
}

func NewService(p Params) *Service {
	return &Service{
		node:      p.Node,
		seq:       p.Seq,
		coupons:   p.Coupons,
		fee:       p.Config.Platform.FeePercent,
		now:       time.Now,
		orders:    store.NewCollection[domain.Order](p.Store, "orders"),
		payouts:   store.NewCollection[domain.Payout](p.Store, "payouts"),
		disputes:  store.NewCollection[domain.Dispute](p.Store, "disputes"),
		reports:   store.NewCollection[domain.Report](p.Store, "reports"),
		tickets:   store.NewCollection[domain.SupportTicket](p.Store, "support_tickets"),
		proposals: store.NewCollection[domain.Proposal](p.Store, "proposals"),
		reviews:   store.NewCollection[domain.Review](p.Store, "reviews"),
		listings:  store.NewCollection[domain.Listing](p.Store, "listings"),
		projects:  store.NewCollection[domain.Project](p.Store, "projects"),
	}
}

func (s *Service) newID() string { return s.node.Generate().String() }

func event(kind domain.Kind, id string, from, to domain.Status, at time.Time) *domain.Event {
	return &domain.Event{
		Kind:           kind,
		EntityID:       id,
		PreviousStatus: from,
		NewStatus:      to,
		OccurredAt:     at,
	}
}

// transitionCheck verifies status legality without applying it.
func transitionCheck(ent domain.Entity, to domain.Status) error {
	kind := ent.EntityKind()
	from := ent.CurrentStatus()
	if validator.Terminal(kind, from) {
		return errutil.Transition(fmt.Sprintf("%s %s is in terminal status %s", kind, ent.EntityID(), from))
	}
	return validator.Transition(kind, from, to)
}

// transition moves one entity of the collection to a new status inside the
// collection lock. hook runs before the status change and carries ownership
// checks plus any side fields the command sets; returning an error from it
// aborts the whole mutation.
func transition[T any, PT interface {
	*T
	domain.Entity
}](ctx context.Context, col *store.Collection[T], at time.Time, id string, to domain.Status, hook func(PT) error) (*domain.Event, error) {
	var z T
	kind := PT(&z).EntityKind()

	var evt *domain.Event
	err := col.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			ent := PT(&items[i])
			if ent.EntityID() != id {
				continue
			}
			if hook != nil {
				if err := hook(ent); err != nil {
					return nil, err
				}
			}
			from := ent.CurrentStatus()
			if err := transitionCheck(ent, to); err != nil {
				return nil, err
			}
			ent.SetStatus(to)
			if err := validator.Check(ent); err != nil {
				return nil, err
			}
			evt = event(kind, id, from, to, at)
			return items, nil
		}
		return nil, errutil.NotFound(fmt.Sprintf("%s %s not found", kind, id))
	})
	if err != nil {
		return nil, err
	}
	return evt, nil
}

// create validates and appends a new entity inside the collection lock.
func create[T any, PT interface {
	*T
	domain.Entity
}](ctx context.Context, col *store.Collection[T], at time.Time, item T, guard func(items []T) error) (*domain.Event, error) {
	ent := PT(&item)
	if err := validator.Check(ent); err != nil {
		return nil, err
	}

	err := col.Mutate(ctx, func(items []T) ([]T, error) {
		if guard != nil {
			if err := guard(items); err != nil {
				return nil, err
			}
		}
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return event(ent.EntityKind(), ent.EntityID(), "", ent.CurrentStatus(), at), nil
}
