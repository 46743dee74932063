package command

import (
	"time"

	"giglane/internal/domain"
)

type OrderRef struct {
	OrderID string `json:"order_id"`
}

type PayoutRef struct {
	PayoutID string `json:"payout_id"`
}

type DisputeRef struct {
	DisputeID string `json:"dispute_id"`
}

type ReportRef struct {
	ReportID string `json:"report_id"`
}

type TicketRef struct {
	TicketID string `json:"ticket_id"`
	Assignee string `json:"assignee,omitempty"`
}

type ProposalRef struct {
	ProposalID string `json:"proposal_id"`
}

type ReviewRef struct {
	ReviewID string `json:"review_id"`
	Reply    string `json:"reply,omitempty"`
}

type CreateCouponPayload struct {
	Code       string            `json:"code"`
	Kind       domain.CouponKind `json:"kind"`
	Value      int64             `json:"value"`
	UsageLimit int64             `json:"usage_limit"`
	Expiry     time.Time         `json:"expiry"`
}

type CouponRef struct {
	Code string `json:"code"`
}
