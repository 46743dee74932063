package domain

import "time"

// Order is a purchase of a listing by a buyer. All amounts are integer
// minor currency units; NetSellerAmount = Gross − Discount − PlatformFee
// holds at all times.
type Order struct {
	OrderID           string     `json:"order_id"`
	OrderCode         string     `json:"order_code"`
	BuyerID           string     `json:"buyer_id"`
	SellerID          string     `json:"seller_id"`
	ServiceID         string     `json:"service_id"`
	GrossAmount       int64      `json:"gross_amount"`
	DiscountAmount    int64      `json:"discount_amount"`
	PlatformFeeAmount int64      `json:"platform_fee_amount"`
	NetSellerAmount   int64      `json:"net_seller_amount"`
	CouponCode        string     `json:"coupon_code,omitempty"`
	Status            Status     `json:"status"`
	DeliveryCount     int        `json:"delivery_count"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

func (o *Order) EntityID() string      { return o.OrderID }
func (o *Order) EntityKind() Kind      { return KindOrder }
func (o *Order) CurrentStatus() Status { return o.Status }
func (o *Order) SetStatus(s Status)    { o.Status = s }

// Payout is a seller withdrawal request against their reconciled balance.
type Payout struct {
	PayoutID    string     `json:"payout_id"`
	PayoutCode  string     `json:"payout_code"`
	SellerID    string     `json:"seller_id"`
	Amount      int64      `json:"amount"`
	Bank        string     `json:"bank"`
	Account     string     `json:"account"`
	Status      Status     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func (p *Payout) EntityID() string      { return p.PayoutID }
func (p *Payout) EntityKind() Kind      { return KindPayout }
func (p *Payout) CurrentStatus() Status { return p.Status }
func (p *Payout) SetStatus(s Status)    { p.Status = s }
