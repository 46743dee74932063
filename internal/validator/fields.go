package validator

import (
	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

// Fields runs the field-level constraints for an entity and returns one
// detail per violation. Pure: no I/O, no mutation.
func Fields(entity any) []errutil.Detail {
	switch e := entity.(type) {
	case *domain.Order:
		return orderFields(e)
	case *domain.Payout:
		return payoutFields(e)
	case *domain.Dispute:
		return disputeFields(e)
	case *domain.Report:
		return reportFields(e)
	case *domain.SupportTicket:
		return ticketFields(e)
	case *domain.Proposal:
		return proposalFields(e)
	case *domain.Review:
		return reviewFields(e)
	case *domain.Coupon:
		return couponFields(e)
	case *domain.Listing:
		return listingFields(e)
	case *domain.Project:
		return projectFields(e)
	}
	return nil
}

// Check wraps Fields into a single validation error, nil when clean.
func Check(entity any) error {
	details := Fields(entity)
	if len(details) == 0 {
		return nil
	}
	return errutil.Validation("invalid fields", details...)
}

func orderFields(o *domain.Order) []errutil.Detail {
	var out []errutil.Detail
	if o.BuyerID == "" {
		out = append(out, errutil.Detail{Field: "buyer_id", Message: "required"})
	}
	if o.SellerID == "" {
		out = append(out, errutil.Detail{Field: "seller_id", Message: "required"})
	}
	if o.ServiceID == "" {
		out = append(out, errutil.Detail{Field: "service_id", Message: "required"})
	}
	if o.GrossAmount <= 0 {
		out = append(out, errutil.Detail{Field: "gross_amount", Message: "must be > 0"})
	}
	if o.DiscountAmount < 0 || o.DiscountAmount > o.GrossAmount {
		out = append(out, errutil.Detail{Field: "discount_amount", Message: "must be within [0, gross_amount]"})
	}
	if o.NetSellerAmount != o.GrossAmount-o.DiscountAmount-o.PlatformFeeAmount {
		out = append(out, errutil.Detail{Field: "net_seller_amount", Message: "must equal gross - discount - platform fee"})
	}
	if (o.Status == domain.StatusCompleted) != (o.CompletedAt != nil) {
		out = append(out, errutil.Detail{Field: "completed_at", Message: "set iff status is completed"})
	}
	return out
}

func payoutFields(p *domain.Payout) []errutil.Detail {
	var out []errutil.Detail
	if p.SellerID == "" {
		out = append(out, errutil.Detail{Field: "seller_id", Message: "required"})
	}
	if p.Amount <= 0 {
		out = append(out, errutil.Detail{Field: "amount", Message: "must be > 0"})
	}
	if p.Bank == "" {
		out = append(out, errutil.Detail{Field: "bank", Message: "required"})
	}
	if p.Account == "" {
		out = append(out, errutil.Detail{Field: "account", Message: "required"})
	}
	processed := p.Status == domain.StatusApproved || p.Status == domain.StatusRejected || p.Status == domain.StatusCompleted
	if processed != (p.ProcessedAt != nil) {
		out = append(out, errutil.Detail{Field: "processed_at", Message: "set iff payout has been processed"})
	}
	return out
}

func disputeFields(d *domain.Dispute) []errutil.Detail {
	var out []errutil.Detail
	if d.OrderID == "" {
		out = append(out, errutil.Detail{Field: "order_id", Message: "required"})
	}
	if d.ReasonCode == "" {
		out = append(out, errutil.Detail{Field: "reason_code", Message: "required"})
	}
	if d.Amount < 0 {
		out = append(out, errutil.Detail{Field: "amount", Message: "must be >= 0"})
	}
	return out
}

func reportFields(r *domain.Report) []errutil.Detail {
	var out []errutil.Detail
	switch r.ReportedType {
	case domain.ReportTargetUser, domain.ReportTargetService, domain.ReportTargetProject, domain.ReportTargetReview:
	default:
		out = append(out, errutil.Detail{Field: "reported_type", Message: "unknown target type"})
	}
	if r.TargetID == "" {
		out = append(out, errutil.Detail{Field: "target_id", Message: "required"})
	}
	if r.ReporterID == "" {
		out = append(out, errutil.Detail{Field: "reporter_id", Message: "required"})
	}
	if r.Reason == "" {
		out = append(out, errutil.Detail{Field: "reason", Message: "required"})
	}
	return out
}

func ticketFields(t *domain.SupportTicket) []errutil.Detail {
	var out []errutil.Detail
	if t.UserID == "" {
		out = append(out, errutil.Detail{Field: "user_id", Message: "required"})
	}
	if t.Subject == "" {
		out = append(out, errutil.Detail{Field: "subject", Message: "required"})
	}
	if t.Status != domain.StatusOpen && t.Assignee == "" {
		out = append(out, errutil.Detail{Field: "assignee", Message: "required once ticket leaves open"})
	}
	return out
}

func proposalFields(p *domain.Proposal) []errutil.Detail {
	var out []errutil.Detail
	if p.ProjectID == "" {
		out = append(out, errutil.Detail{Field: "project_id", Message: "required"})
	}
	if p.ExpertID == "" {
		out = append(out, errutil.Detail{Field: "expert_id", Message: "required"})
	}
	if p.Price <= 0 {
		out = append(out, errutil.Detail{Field: "price", Message: "must be > 0"})
	}
	if p.DeliveryDays < 1 {
		out = append(out, errutil.Detail{Field: "delivery_days", Message: "must be >= 1"})
	}
	return out
}

func reviewFields(r *domain.Review) []errutil.Detail {
	var out []errutil.Detail
	if r.OrderID == "" {
		out = append(out, errutil.Detail{Field: "order_id", Message: "required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		out = append(out, errutil.Detail{Field: "rating", Message: "must be within [1, 5]"})
	}
	return out
}

func couponFields(c *domain.Coupon) []errutil.Detail {
	var out []errutil.Detail
	if c.Code == "" {
		out = append(out, errutil.Detail{Field: "code", Message: "required"})
	}
	switch c.Kind {
	case domain.CouponPercentage:
		if c.Value > 100 {
			out = append(out, errutil.Detail{Field: "value", Message: "percentage must be <= 100"})
		}
	case domain.CouponAmount:
	default:
		out = append(out, errutil.Detail{Field: "kind", Message: "unknown coupon kind"})
	}
	if c.Value <= 0 {
		out = append(out, errutil.Detail{Field: "value", Message: "must be > 0"})
	}
	if c.UsageLimit <= 0 {
		out = append(out, errutil.Detail{Field: "usage_limit", Message: "must be > 0"})
	}
	if c.UsedCount < 0 || c.UsedCount > c.UsageLimit {
		out = append(out, errutil.Detail{Field: "used_count", Message: "must be within [0, usage_limit]"})
	}
	return out
}

func listingFields(l *domain.Listing) []errutil.Detail {
	var out []errutil.Detail
	if l.SellerID == "" {
		out = append(out, errutil.Detail{Field: "seller_id", Message: "required"})
	}
	if l.Title == "" {
		out = append(out, errutil.Detail{Field: "title", Message: "required"})
	}
	if l.Price <= 0 {
		out = append(out, errutil.Detail{Field: "price", Message: "must be > 0"})
	}
	return out
}

func projectFields(p *domain.Project) []errutil.Detail {
	var out []errutil.Detail
	if p.ClientID == "" {
		out = append(out, errutil.Detail{Field: "client_id", Message: "required"})
	}
	if p.Title == "" {
		out = append(out, errutil.Detail{Field: "title", Message: "required"})
	}
	if p.Budget < 0 {
		out = append(out, errutil.Detail{Field: "budget", Message: "must be >= 0"})
	}
	return out
}
