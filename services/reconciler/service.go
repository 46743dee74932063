package reconciler

import (
	"context"

	"go.uber.org/fx"

	"giglane/internal/domain"
	"giglane/internal/store"
	"giglane/pkg/config"
)

// Service derives monetary views from orders and payouts. Balances are
// recomputed from the ledger on every call and never cached; a snapshot is
// always internally consistent because each collection loads atomically.
type Service struct {
	orders   *store.Collection[domain.Order]
	payouts  *store.Collection[domain.Payout]
	currency string
}

type Params struct {
	fx.In

	Store  *store.Store
	Config *config.Config
}

func NewService(p Params) *Service {
	return &Service{
		orders:   store.NewCollection[domain.Order](p.Store, "orders"),
		payouts:  store.NewCollection[domain.Payout](p.Store, "payouts"),
		currency: p.Config.Platform.Currency,
	}
}

// Available is the pure balance rule: net earnings of completed orders minus
// every payout that has been approved or settled. Pending payout requests do
// not reserve funds; approval is the spend point.
func Available(orders []domain.Order, payouts []domain.Payout, sellerID string) int64 {
	var balance int64
	for i := range orders {
		if orders[i].SellerID == sellerID && orders[i].Status == domain.StatusCompleted {
			balance += orders[i].NetSellerAmount
		}
	}
	for i := range payouts {
		if payouts[i].SellerID != sellerID {
			continue
		}
		switch payouts[i].Status {
		case domain.StatusApproved, domain.StatusCompleted:
			balance -= payouts[i].Amount
		}
	}
	return balance
}

func (s *Service) AvailableBalance(ctx context.Context, sellerID string) (int64, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return 0, err
	}
	payouts, err := s.payouts.All(ctx)
	if err != nil {
		return 0, err
	}
	return Available(orders, payouts, sellerID), nil
}

// Statement is one seller's money story, fully derived.
type Statement struct {
	SellerID        string `json:"seller_id"`
	Currency        string `json:"currency"`
	CompletedOrders int    `json:"completed_orders"`
	Earned          int64  `json:"earned"`
	Reserved        int64  `json:"reserved"`
	PaidOut         int64  `json:"paid_out"`
	Available       int64  `json:"available"`
}

func (s *Service) SellerStatement(ctx context.Context, sellerID string) (*Statement, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payouts.All(ctx)
	if err != nil {
		return nil, err
	}

	st := &Statement{SellerID: sellerID, Currency: s.currency}
	for i := range orders {
		if orders[i].SellerID == sellerID && orders[i].Status == domain.StatusCompleted {
			st.CompletedOrders++
			st.Earned += orders[i].NetSellerAmount
		}
	}
	for i := range payouts {
		if payouts[i].SellerID != sellerID {
			continue
		}
		switch payouts[i].Status {
		case domain.StatusApproved:
			st.Reserved += payouts[i].Amount
		case domain.StatusCompleted:
			st.PaidOut += payouts[i].Amount
		}
	}
	st.Available = st.Earned - st.Reserved - st.PaidOut
	return st, nil
}

// Summary aggregates the whole platform ledger.
type Summary struct {
	Currency        string `json:"currency"`
	CompletedOrders int    `json:"completed_orders"`
	GrossVolume     int64  `json:"gross_volume"`
	DiscountsGiven  int64  `json:"discounts_given"`
	FeesCollected   int64  `json:"fees_collected"`
	SellerNet       int64  `json:"seller_net"`
	PayoutsReserved int64  `json:"payouts_reserved"`
	PayoutsSettled  int64  `json:"payouts_settled"`
}

func (s *Service) PlatformSummary(ctx context.Context) (*Summary, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payouts.All(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Currency: s.currency}
	for i := range orders {
		if orders[i].Status != domain.StatusCompleted {
			continue
		}
		sum.CompletedOrders++
		sum.GrossVolume += orders[i].GrossAmount
		sum.DiscountsGiven += orders[i].DiscountAmount
		sum.FeesCollected += orders[i].PlatformFeeAmount
		sum.SellerNet += orders[i].NetSellerAmount
	}
	for i := range payouts {
		switch payouts[i].Status {
		case domain.StatusApproved:
			sum.PayoutsReserved += payouts[i].Amount
		case domain.StatusCompleted:
			sum.PayoutsSettled += payouts[i].Amount
		}
	}
	return sum, nil
}
