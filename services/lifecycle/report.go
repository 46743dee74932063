package lifecycle

import (
	"context"

	"giglane/internal/domain"
)

type FileReportInput struct {
	ReportedType domain.ReportTarget `json:"reported_type"`
	TargetID     string              `json:"target_id"`
	Reason       string              `json:"reason"`
}

func (s *Service) FileReport(ctx context.Context, actor domain.Actor, in FileReportInput) (*domain.Event, error) {
	now := s.now()
	report := domain.Report{
		ReportID:     s.newID(),
		ReportedType: in.ReportedType,
		TargetID:     in.TargetID,
		ReporterID:   actor.ID,
		Reason:       in.Reason,
		Status:       domain.StatusOpen,
		CreatedAt:    now,
	}
	return create[domain.Report](ctx, s.reports, now, report, nil)
}

func (s *Service) ResolveReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Event, error) {
	return transition[domain.Report](ctx, s.reports, s.now(), reportID, domain.StatusResolved, nil)
}

func (s *Service) DismissReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Event, error) {
	return transition[domain.Report](ctx, s.reports, s.now(), reportID, domain.StatusDismissed, nil)
}
