package domain

import "time"

// Dispute is raised by the buyer or seller of an order that is in progress
// or completed. It references the order and never mutates it directly.
type Dispute struct {
	DisputeID  string    `json:"dispute_id"`
	OrderID    string    `json:"order_id"`
	BuyerID    string    `json:"buyer_id"`
	SellerID   string    `json:"seller_id"`
	ReasonCode string    `json:"reason_code"`
	Amount     int64     `json:"amount"`
	Status     Status    `json:"status"`
	Priority   string    `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d *Dispute) EntityID() string      { return d.DisputeID }
func (d *Dispute) EntityKind() Kind      { return KindDispute }
func (d *Dispute) CurrentStatus() Status { return d.Status }
func (d *Dispute) SetStatus(s Status)    { d.Status = s }

type ReportTarget string

const (
	ReportTargetUser    ReportTarget = "user"
	ReportTargetService ReportTarget = "service"
	ReportTargetProject ReportTarget = "project"
	ReportTargetReview  ReportTarget = "review"
)

type Report struct {
	ReportID     string       `json:"report_id"`
	ReportedType ReportTarget `json:"reported_type"`
	TargetID     string       `json:"target_id"`
	ReporterID   string       `json:"reporter_id"`
	Reason       string       `json:"reason"`
	Status       Status       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (r *Report) EntityID() string      { return r.ReportID }
func (r *Report) EntityKind() Kind      { return KindReport }
func (r *Report) CurrentStatus() Status { return r.Status }
func (r *Report) SetStatus(s Status)    { r.Status = s }

// SupportTicket carries an assignee once it leaves Open.
type SupportTicket struct {
	TicketID   string    `json:"ticket_id"`
	TicketCode string    `json:"ticket_code"`
	UserID     string    `json:"user_id"`
	Subject    string    `json:"subject"`
	Priority   string    `json:"priority"`
	Assignee   string    `json:"assignee,omitempty"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t *SupportTicket) EntityID() string      { return t.TicketID }
func (t *SupportTicket) EntityKind() Kind      { return KindTicket }
func (t *SupportTicket) CurrentStatus() Status { return t.Status }
func (t *SupportTicket) SetStatus(s Status)    { t.Status = s }

// Review: exactly one per completed order.
type Review struct {
	ReviewID  string    `json:"review_id"`
	OrderID   string    `json:"order_id"`
	BuyerID   string    `json:"buyer_id"`
	SellerID  string    `json:"seller_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    Status    `json:"status"`
	Reply     string    `json:"reply,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) EntityID() string      { return r.ReviewID }
func (r *Review) EntityKind() Kind      { return KindReview }
func (r *Review) CurrentStatus() Status { return r.Status }
func (r *Review) SetStatus(s Status)    { r.Status = s }
