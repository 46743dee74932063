package command

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giglane/internal/domain"
	"giglane/internal/events"
	"giglane/internal/validator"
	"giglane/pkg/errutil"
	"giglane/services/lifecycle"
)

type handlerFunc func(ctx context.Context, actor domain.Actor, payload json.RawMessage) (*domain.Event, error)

// Service is the command dispatcher: one entry point for every state
// change. It authorizes by role, routes to the lifecycle engine, and hands
// the resulting event to the publisher. Publish failures are logged, never
// surfaced; the state change has already committed.
type Service struct {
	engine    *lifecycle.Service
	publisher events.Publisher
	handlers  map[domain.CommandName]handlerFunc
}

type Params struct {
	fx.In

	Engine    *lifecycle.Service
	Publisher events.Publisher
}

func NewService(p Params) *Service {
	s := &Service{engine: p.Engine, publisher: p.Publisher}
	s.handlers = map[domain.CommandName]handlerFunc{
		domain.CmdCreateListing: route(s, (*lifecycle.Service).CreateListing),
		domain.CmdCreateProject: route(s, (*lifecycle.Service).CreateProject),

		domain.CmdCreateOrder:     route(s, (*lifecycle.Service).CreateOrder),
		domain.CmdAcceptOrder:     route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r OrderRef) (*domain.Event, error) {
			return e.AcceptOrder(ctx, a, r.OrderID)
		}),
		domain.CmdDeliverOrder: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r OrderRef) (*domain.Event, error) {
			return e.DeliverOrder(ctx, a, r.OrderID)
		}),
		domain.CmdRequestRevision: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r OrderRef) (*domain.Event, error) {
			return e.RequestRevision(ctx, a, r.OrderID)
		}),
		domain.CmdApproveDelivery: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r OrderRef) (*domain.Event, error) {
			return e.ApproveDelivery(ctx, a, r.OrderID)
		}),
		domain.CmdCancelOrder: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r OrderRef) (*domain.Event, error) {
			return e.CancelOrder(ctx, a, r.OrderID)
		}),

		domain.CmdRequestPayout: route(s, (*lifecycle.Service).RequestPayout),
		domain.CmdApprovePayout: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r PayoutRef) (*domain.Event, error) {
			return e.ApprovePayout(ctx, a, r.PayoutID)
		}),
		domain.CmdRejectPayout: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r PayoutRef) (*domain.Event, error) {
			return e.RejectPayout(ctx, a, r.PayoutID)
		}),
		domain.CmdCompletePayout: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r PayoutRef) (*domain.Event, error) {
			return e.CompletePayout(ctx, a, r.PayoutID)
		}),

		domain.CmdOpenDispute: route(s, (*lifecycle.Service).OpenDispute),
		domain.CmdResolveDispute: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r DisputeRef) (*domain.Event, error) {
			return e.ResolveDispute(ctx, a, r.DisputeID)
		}),
		domain.CmdCloseDispute: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r DisputeRef) (*domain.Event, error) {
			return e.CloseDispute(ctx, a, r.DisputeID)
		}),

		domain.CmdFileReport: route(s, (*lifecycle.Service).FileReport),
		domain.CmdResolveReport: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ReportRef) (*domain.Event, error) {
			return e.ResolveReport(ctx, a, r.ReportID)
		}),
		domain.CmdDismissReport: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ReportRef) (*domain.Event, error) {
			return e.DismissReport(ctx, a, r.ReportID)
		}),

		domain.CmdOpenTicket: route(s, (*lifecycle.Service).OpenTicket),
		domain.CmdAssignTicket: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r TicketRef) (*domain.Event, error) {
			return e.AssignTicket(ctx, a, r.TicketID, r.Assignee)
		}),
		domain.CmdResolveTicket: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r TicketRef) (*domain.Event, error) {
			return e.ResolveTicket(ctx, a, r.TicketID)
		}),
		domain.CmdCloseTicket: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r TicketRef) (*domain.Event, error) {
			return e.CloseTicket(ctx, a, r.TicketID)
		}),

		domain.CmdSubmitProposal: route(s, (*lifecycle.Service).SubmitProposal),
		domain.CmdAcceptProposal: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ProposalRef) (*domain.Event, error) {
			return e.AcceptProposal(ctx, a, r.ProposalID)
		}),
		domain.CmdRejectProposal: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ProposalRef) (*domain.Event, error) {
			return e.RejectProposal(ctx, a, r.ProposalID)
		}),
		domain.CmdWithdrawProposal: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ProposalRef) (*domain.Event, error) {
			return e.WithdrawProposal(ctx, a, r.ProposalID)
		}),

		domain.CmdSubmitReview: route(s, (*lifecycle.Service).SubmitReview),
		domain.CmdReplyReview: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ReviewRef) (*domain.Event, error) {
			return e.ReplyReview(ctx, a, r.ReviewID, r.Reply)
		}),
		domain.CmdHideReview: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ReviewRef) (*domain.Event, error) {
			return e.HideReview(ctx, a, r.ReviewID)
		}),
		domain.CmdUnhideReview: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r ReviewRef) (*domain.Event, error) {
			return e.UnhideReview(ctx, a, r.ReviewID)
		}),

		domain.CmdCreateCoupon: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, p CreateCouponPayload) (*domain.Event, error) {
			return e.CreateCoupon(ctx, a, domain.Coupon{
				Code:       p.Code,
				Kind:       p.Kind,
				Value:      p.Value,
				UsageLimit: p.UsageLimit,
				Expiry:     p.Expiry,
			})
		}),
		domain.CmdDeactivateCoupon: route(s, func(e *lifecycle.Service, ctx context.Context, a domain.Actor, r CouponRef) (*domain.Event, error) {
			return e.DeactivateCoupon(ctx, a, r.Code)
		}),
	}
	return s
}

// route adapts a lifecycle method taking a typed input struct.
func route[In any](s *Service, fn func(*lifecycle.Service, context.Context, domain.Actor, In) (*domain.Event, error)) handlerFunc {
	return func(ctx context.Context, actor domain.Actor, payload json.RawMessage) (*domain.Event, error) {
		in, err := decode[In](payload)
		if err != nil {
			return nil, err
		}
		return fn(s.engine, ctx, actor, in)
	}
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, errutil.Validation("malformed command payload")
	}
	return v, nil
}

// Execute runs one command end to end: role gate, dispatch, event publish.
func (s *Service) Execute(ctx context.Context, name domain.CommandName, actor domain.Actor, payload json.RawMessage) (*domain.Event, error) {
	log := zap.L()
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		log = log.With(
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
		)
	}

	handler, ok := s.handlers[name]
	if !ok || !validator.Known(name) {
		return nil, errutil.NotFound("unknown command " + string(name))
	}
	if actor.ID == "" {
		return nil, errutil.Validation("invalid actor", errutil.Detail{Field: "actor.id", Message: "required"})
	}
	if err := validator.Authorize(name, actor.Role); err != nil {
		return nil, err
	}

	evt, err := handler(ctx, actor, payload)
	if err != nil {
		log.Warn("command rejected",
			zap.String("command", string(name)),
			zap.String("actor_id", actor.ID),
			zap.String("role", string(actor.Role)),
			zap.Error(err))
		return nil, err
	}

	log.Info("command applied",
		zap.String("command", string(name)),
		zap.String("actor_id", actor.ID),
		zap.String("kind", string(evt.Kind)),
		zap.String("entity_id", evt.EntityID),
		zap.String("status", string(evt.NewStatus)))

	if err := s.publisher.Publish(ctx, *evt); err != nil {
		log.Error("failed to publish lifecycle event",
			zap.String("command", string(name)),
			zap.String("entity_id", evt.EntityID),
			zap.Error(err))
	}
	return evt, nil
}
