package lifecycle

import (
	"context"

	"giglane/internal/domain"
	"giglane/internal/validator"
)

type CreateListingInput struct {
	Title string `json:"title"`
	Price int64  `json:"price"`
}

func (s *Service) CreateListing(ctx context.Context, actor domain.Actor, in CreateListingInput) (*domain.Event, error) {
	now := s.now()

	listing := domain.Listing{
		ListingID: s.newID(),
		SellerID:  actor.ID,
		Title:     in.Title,
		Price:     in.Price,
		Active:    true,
		CreatedAt: now,
	}
	if err := validator.Check(&listing); err != nil {
		return nil, err
	}

	err := s.listings.Mutate(ctx, func(items []domain.Listing) ([]domain.Listing, error) {
		return append(items, listing), nil
	})
	if err != nil {
		return nil, err
	}
	return event(domain.KindListing, listing.ListingID, "", domain.StatusActive, now), nil
}

type CreateProjectInput struct {
	Title  string `json:"title"`
	Budget int64  `json:"budget"`
}

func (s *Service) CreateProject(ctx context.Context, actor domain.Actor, in CreateProjectInput) (*domain.Event, error) {
	now := s.now()

	project := domain.Project{
		ProjectID: s.newID(),
		ClientID:  actor.ID,
		Title:     in.Title,
		Budget:    in.Budget,
		Status:    domain.StatusOpen,
		CreatedAt: now,
	}
	return create[domain.Project](ctx, s.projects, now, project, nil)
}

// CreateCoupon and DeactivateCoupon delegate to the coupon engine; the
// lifecycle layer only shapes the event.
func (s *Service) CreateCoupon(ctx context.Context, actor domain.Actor, c domain.Coupon) (*domain.Event, error) {
	now := s.now()
	created, err := s.coupons.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return event(domain.KindCoupon, created.Code, "", domain.StatusActive, now), nil
}

func (s *Service) DeactivateCoupon(ctx context.Context, actor domain.Actor, code string) (*domain.Event, error) {
	now := s.now()
	c, err := s.coupons.Deactivate(ctx, code)
	if err != nil {
		return nil, err
	}
	return event(domain.KindCoupon, c.Code, domain.StatusActive, domain.StatusInactive, now), nil
}
