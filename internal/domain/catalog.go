package domain

import "time"

// Listing is a service offered by a seller; orders resolve their gross
// amount from the listing price at creation time.
type Listing struct {
	ListingID string    `json:"listing_id"`
	SellerID  string    `json:"seller_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a client brief experts submit proposals against. Accepting a
// proposal flips the project open → in_progress; only one proposal per
// project can ever be accepted.
type Project struct {
	ProjectID string    `json:"project_id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	Budget    int64     `json:"budget"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Project) EntityID() string      { return p.ProjectID }
func (p *Project) EntityKind() Kind      { return KindProject }
func (p *Project) CurrentStatus() Status { return p.Status }
func (p *Project) SetStatus(s Status)    { p.Status = s }

type Proposal struct {
	ProposalID   string    `json:"proposal_id"`
	ProjectID    string    `json:"project_id"`
	ExpertID     string    `json:"expert_id"`
	Price        int64     `json:"price"`
	DeliveryDays int       `json:"delivery_days"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Proposal) EntityID() string      { return p.ProposalID }
func (p *Proposal) EntityKind() Kind      { return KindProposal }
func (p *Proposal) CurrentStatus() Status { return p.Status }
func (p *Proposal) SetStatus(s Status)    { p.Status = s }

type CouponKind string

const (
	CouponPercentage CouponKind = "percentage"
	CouponAmount     CouponKind = "amount"
)

// Coupon usage is tracked on the coupon itself; UsedCount never exceeds
// UsageLimit.
type Coupon struct {
	Code       string    `json:"code"`
	Kind       CouponKind `json:"kind"`
	Value      int64     `json:"value"`
	UsageLimit int64     `json:"usage_limit"`
	UsedCount  int64     `json:"used_count"`
	Expiry     time.Time `json:"expiry"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
