package lifecycle

import (
	"context"
	"fmt"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

type OpenDisputeInput struct {
	OrderID    string `json:"order_id"`
	ReasonCode string `json:"reason_code"`
	Amount     int64  `json:"amount"`
	Priority   string `json:"priority,omitempty"`
}

// OpenDispute attaches a dispute to an order that has work to argue about:
// in progress or completed. Only the two parties of the order may open one.
func (s *Service) OpenDispute(ctx context.Context, actor domain.Actor, in OpenDisputeInput) (*domain.Event, error) {
	now := s.now()

	order, err := s.findOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if actor.ID != order.BuyerID && actor.ID != order.SellerID {
		return nil, errutil.Authorization("only the order's buyer or seller may open a dispute")
	}
	switch order.Status {
	case domain.StatusInProgress, domain.StatusCompleted:
	default:
		return nil, errutil.Conflict(fmt.Sprintf("cannot dispute an order in status %s", order.Status))
	}
	if in.Amount < 0 || in.Amount > order.GrossAmount {
		return nil, errutil.Validation("invalid fields", errutil.Detail{Field: "amount", Message: "must be within [0, order gross amount]"})
	}
	if in.Priority == "" {
		in.Priority = "normal"
	}

	dispute := domain.Dispute{
		DisputeID:  s.newID(),
		OrderID:    order.OrderID,
		BuyerID:    order.BuyerID,
		SellerID:   order.SellerID,
		ReasonCode: in.ReasonCode,
		Amount:     in.Amount,
		Status:     domain.StatusOpen,
		Priority:   in.Priority,
		CreatedAt:  now,
	}
	return create[domain.Dispute](ctx, s.disputes, now, dispute, nil)
}

func (s *Service) ResolveDispute(ctx context.Context, actor domain.Actor, disputeID string) (*domain.Event, error) {
	return transition[domain.Dispute](ctx, s.disputes, s.now(), disputeID, domain.StatusResolved, nil)
}

func (s *Service) CloseDispute(ctx context.Context, actor domain.Actor, disputeID string) (*domain.Event, error) {
	return transition[domain.Dispute](ctx, s.disputes, s.now(), disputeID, domain.StatusClosed, nil)
}

func (s *Service) findOrder(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == id {
			return &orders[i], nil
		}
	}
	return nil, errutil.NotFound(fmt.Sprintf("order %s not found", id))
}
