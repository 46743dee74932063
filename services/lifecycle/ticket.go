package lifecycle

import (
	"context"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

type OpenTicketInput struct {
	Subject  string `json:"subject"`
	Priority string `json:"priority,omitempty"`
}

func (s *Service) OpenTicket(ctx context.Context, actor domain.Actor, in OpenTicketInput) (*domain.Event, error) {
	now := s.now()

	code, err := s.seq.NextTicketCode(ctx)
	if err != nil {
		return nil, errutil.Persistence("failed to issue ticket code", err)
	}
	if in.Priority == "" {
		in.Priority = "normal"
	}

	ticket := domain.SupportTicket{
		TicketID:   s.newID(),
		TicketCode: code,
		UserID:     actor.ID,
		Subject:    in.Subject,
		Priority:   in.Priority,
		Status:     domain.StatusOpen,
		CreatedAt:  now,
	}
	return create[domain.SupportTicket](ctx, s.tickets, now, ticket, nil)
}

// AssignTicket moves the ticket into progress; the assignee is mandatory
// from this point on.
func (s *Service) AssignTicket(ctx context.Context, actor domain.Actor, ticketID, assignee string) (*domain.Event, error) {
	if assignee == "" {
		return nil, errutil.Validation("invalid fields", errutil.Detail{Field: "assignee", Message: "required"})
	}
	return transition[domain.SupportTicket](ctx, s.tickets, s.now(), ticketID, domain.StatusInProgress, func(t *domain.SupportTicket) error {
		t.Assignee = assignee
		return nil
	})
}

func (s *Service) ResolveTicket(ctx context.Context, actor domain.Actor, ticketID string) (*domain.Event, error) {
	return transition[domain.SupportTicket](ctx, s.tickets, s.now(), ticketID, domain.StatusResolved, nil)
}

func (s *Service) CloseTicket(ctx context.Context, actor domain.Actor, ticketID string) (*domain.Event, error) {
	return transition[domain.SupportTicket](ctx, s.tickets, s.now(), ticketID, domain.StatusClosed, nil)
}
