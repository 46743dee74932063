package lifecycle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

type SubmitProposalInput struct {
	ProjectID    string `json:"project_id"`
	Price        int64  `json:"price"`
	DeliveryDays int    `json:"delivery_days"`
}

func (s *Service) SubmitProposal(ctx context.Context, actor domain.Actor, in SubmitProposalInput) (*domain.Event, error) {
	now := s.now()

	project, err := s.findProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != domain.StatusOpen {
		return nil, errutil.Conflict("project is not open for proposals")
	}
	if project.ClientID == actor.ID {
		return nil, errutil.Conflict("cannot submit a proposal to your own project")
	}

	proposal := domain.Proposal{
		ProposalID:   s.newID(),
		ProjectID:    project.ProjectID,
		ExpertID:     actor.ID,
		Price:        in.Price,
		DeliveryDays: in.DeliveryDays,
		Status:       domain.StatusSent,
		CreatedAt:    now,
	}
	return create[domain.Proposal](ctx, s.proposals, now, proposal, func(items []domain.Proposal) error {
		for i := range items {
			if items[i].ProjectID == project.ProjectID && items[i].ExpertID == actor.ID && items[i].Status == domain.StatusSent {
				return errutil.Conflict("a proposal for this project is already pending")
			}
		}
		return nil
	})
}

// AcceptProposal commits across two collections: the project flips
// open → in_progress first, which makes it the arbiter — once it has left
// open, no second proposal can be accepted. If the proposal commit then
// fails, the project flip is compensated back.
func (s *Service) AcceptProposal(ctx context.Context, actor domain.Actor, proposalID string) (*domain.Event, error) {
	now := s.now()

	proposal, err := s.findProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	err = s.projects.Mutate(ctx, func(items []domain.Project) ([]domain.Project, error) {
		for i := range items {
			if items[i].ProjectID != proposal.ProjectID {
				continue
			}
			if items[i].ClientID != actor.ID {
				return nil, errutil.Authorization("only the project's client may accept a proposal")
			}
			if items[i].Status != domain.StatusOpen {
				return nil, errutil.Conflict("project already has an accepted proposal")
			}
			items[i].Status = domain.StatusInProgress
			return items, nil
		}
		return nil, errutil.NotFound(fmt.Sprintf("project %s not found", proposal.ProjectID))
	})
	if err != nil {
		return nil, err
	}

	evt, err := transition[domain.Proposal](ctx, s.proposals, now, proposalID, domain.StatusAccepted, func(p *domain.Proposal) error {
		if p.Status != domain.StatusSent {
			return errutil.Conflict("proposal is no longer pending")
		}
		return nil
	})
	if err != nil {
		s.revertProject(ctx, proposal.ProjectID)
		return nil, err
	}
	return evt, nil
}

func (s *Service) revertProject(ctx context.Context, projectID string) {
	err := s.projects.Mutate(ctx, func(items []domain.Project) ([]domain.Project, error) {
		for i := range items {
			if items[i].ProjectID == projectID {
				items[i].Status = domain.StatusOpen
				return items, nil
			}
		}
		return nil, errutil.NotFound(fmt.Sprintf("project %s not found", projectID))
	})
	if err != nil {
		zap.L().Error("failed to revert project after proposal commit failure",
			zap.String("project_id", projectID), zap.Error(err))
	}
}

func (s *Service) RejectProposal(ctx context.Context, actor domain.Actor, proposalID string) (*domain.Event, error) {
	proposal, err := s.findProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	project, err := s.findProject(ctx, proposal.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != actor.ID {
		return nil, errutil.Authorization("only the project's client may reject a proposal")
	}
	return transition[domain.Proposal](ctx, s.proposals, s.now(), proposalID, domain.StatusRejected, nil)
}

func (s *Service) WithdrawProposal(ctx context.Context, actor domain.Actor, proposalID string) (*domain.Event, error) {
	return transition[domain.Proposal](ctx, s.proposals, s.now(), proposalID, domain.StatusWithdrawn, func(p *domain.Proposal) error {
		if p.ExpertID != actor.ID {
			return errutil.Authorization("only the proposal's author may withdraw it")
		}
		return nil
	})
}

func (s *Service) findProject(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := s.projects.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ProjectID == id {
			return &projects[i], nil
		}
	}
	return nil, errutil.NotFound(fmt.Sprintf("project %s not found", id))
}

func (s *Service) findProposal(ctx context.Context, id string) (*domain.Proposal, error) {
	proposals, err := s.proposals.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range proposals {
		if proposals[i].ProposalID == id {
			return &proposals[i], nil
		}
	}
	return nil, errutil.NotFound(fmt.Sprintf("proposal %s not found", id))
}
