package domain

import "time"

// Kind names an entity collection. Collection names in the store are the
// plural of the kind.
type Kind string

const (
	KindOrder    Kind = "order"
	KindPayout   Kind = "payout"
	KindDispute  Kind = "dispute"
	KindReport   Kind = "report"
	KindTicket   Kind = "support_ticket"
	KindProposal Kind = "proposal"
	KindReview   Kind = "review"
	KindCoupon   Kind = "coupon"
	KindListing  Kind = "listing"
	KindProject  Kind = "project"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusOpen       Status = "open"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusDismissed  Status = "dismissed"
	StatusSent       Status = "sent"
	StatusAccepted   Status = "accepted"
	StatusWithdrawn  Status = "withdrawn"
	StatusVisible    Status = "visible"
	StatusHidden     Status = "hidden"

	// Listings and coupons carry an active flag rather than a state machine;
	// their events still report a status.
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Actor is the caller of a command: who they are and what they may do.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Entity is implemented by every record that moves through the lifecycle
// state machines.
type Entity interface {
	EntityID() string
	EntityKind() Kind
	CurrentStatus() Status
	SetStatus(Status)
}

// Event is emitted for every applied transition. The engine returns events;
// delivery to notification collaborators happens outside the core.
type Event struct {
	Kind           Kind      `json:"kind"`
	EntityID       string    `json:"entity_id"`
	PreviousStatus Status    `json:"previous_status"`
	NewStatus      Status    `json:"new_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}
