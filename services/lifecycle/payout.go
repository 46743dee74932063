package lifecycle

import (
	"context"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
	"giglane/services/reconciler"
)

type RequestPayoutInput struct {
	Amount  int64  `json:"amount"`
	Bank    string `json:"bank"`
	Account string `json:"account"`
}

// RequestPayout books a pending withdrawal after an optimistic balance
// check. The authoritative check happens again at approval; a pending
// request never reserves funds.
func (s *Service) RequestPayout(ctx context.Context, actor domain.Actor, in RequestPayoutInput) (*domain.Event, error) {
	now := s.now()

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	code, err := s.seq.NextPayoutCode(ctx)
	if err != nil {
		return nil, errutil.Persistence("failed to issue payout code", err)
	}

	payout := domain.Payout{
		PayoutID:    s.newID(),
		PayoutCode:  code,
		SellerID:    actor.ID,
		Amount:      in.Amount,
		Bank:        in.Bank,
		Account:     in.Account,
		Status:      domain.StatusPending,
		RequestedAt: now,
	}

	return create[domain.Payout](ctx, s.payouts, now, payout, func(items []domain.Payout) error {
		if available := reconciler.Available(orders, items, actor.ID); in.Amount > available {
			return errutil.Conflict("requested amount exceeds available balance")
		}
		return nil
	})
}

// ApprovePayout re-derives the seller's balance inside the payouts lock so
// two concurrent approvals cannot both spend the same funds. The orders
// snapshot is taken before the lock; completed orders never revert, so the
// balance can only be undercounted, never overcounted.
func (s *Service) ApprovePayout(ctx context.Context, actor domain.Actor, payoutID string) (*domain.Event, error) {
	now := s.now()

	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	var evt *domain.Event
	err = s.payouts.Mutate(ctx, func(items []domain.Payout) ([]domain.Payout, error) {
		for i := range items {
			p := &items[i]
			if p.PayoutID != payoutID {
				continue
			}
			if err := transitionCheck(p, domain.StatusApproved); err != nil {
				return nil, err
			}
			if available := reconciler.Available(orders, items, p.SellerID); p.Amount > available {
				return nil, errutil.Conflict("payout amount exceeds available balance")
			}
			p.Status = domain.StatusApproved
			p.ProcessedAt = &now
			evt = event(domain.KindPayout, payoutID, domain.StatusPending, domain.StatusApproved, now)
			return items, nil
		}
		return nil, errutil.NotFound("payout " + payoutID + " not found")
	})
	if err != nil {
		return nil, err
	}
	return evt, nil
}

func (s *Service) RejectPayout(ctx context.Context, actor domain.Actor, payoutID string) (*domain.Event, error) {
	now := s.now()
	return transition[domain.Payout](ctx, s.payouts, now, payoutID, domain.StatusRejected, func(p *domain.Payout) error {
		p.ProcessedAt = &now
		return nil
	})
}

func (s *Service) CompletePayout(ctx context.Context, actor domain.Actor, payoutID string) (*domain.Event, error) {
	now := s.now()
	return transition[domain.Payout](ctx, s.payouts, now, payoutID, domain.StatusCompleted, func(p *domain.Payout) error {
		p.ProcessedAt = &now
		return nil
	})
}
