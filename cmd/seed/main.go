package main

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"giglane/internal/domain"
	"giglane/internal/events"
	"giglane/internal/store"
	"giglane/pkg/config"
	"giglane/pkg/gen"
	"giglane/pkg/logger"
	pkgredis "giglane/pkg/redis"
	"giglane/pkg/sequence"
	"giglane/services/command"
	"giglane/services/coupon"
	"giglane/services/lifecycle"
	"giglane/services/reconciler"
)

var (
	seedSeller = domain.Actor{ID: "seed-seller", Role: domain.RoleSeller}
	seedBuyer  = domain.Actor{ID: "seed-buyer", Role: domain.RoleBuyer}
	seedAdmin  = domain.Actor{ID: "seed-admin", Role: domain.RoleAdmin}
)

func execute(ctx context.Context, commands *command.Service, name domain.CommandName, actor domain.Actor, payload any) (*domain.Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return commands.Execute(ctx, name, actor, raw)
}

// seed populates a fresh database with a small demo marketplace: two
// listings, an active coupon, one completed order and one still in
// progress, plus an open project with a pending proposal. Everything goes
// through the command surface, role gates included.
func seed(lc fx.Lifecycle, commands *command.Service, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logoEvt, err := execute(ctx, commands, domain.CmdCreateListing, seedSeller,
				lifecycle.CreateListingInput{Title: "Logo design", Price: 250000})
			if err != nil {
				return err
			}
			if _, err := execute(ctx, commands, domain.CmdCreateListing, seedSeller,
				lifecycle.CreateListingInput{Title: "SEO audit", Price: 120000}); err != nil {
				return err
			}

			if _, err := execute(ctx, commands, domain.CmdCreateCoupon, seedAdmin, command.CreateCouponPayload{
				Code:       "WELCOME10",
				Kind:       domain.CouponPercentage,
				Value:      10,
				UsageLimit: 100,
				Expiry:     time.Now().AddDate(0, 3, 0),
			}); err != nil {
				return err
			}

			orderEvt, err := execute(ctx, commands, domain.CmdCreateOrder, seedBuyer,
				lifecycle.CreateOrderInput{ServiceID: logoEvt.EntityID, CouponCode: "WELCOME10"})
			if err != nil {
				return err
			}
			ref := command.OrderRef{OrderID: orderEvt.EntityID}
			for _, name := range []domain.CommandName{domain.CmdAcceptOrder, domain.CmdDeliverOrder} {
				if _, err := execute(ctx, commands, name, seedSeller, ref); err != nil {
					return err
				}
			}
			if _, err := execute(ctx, commands, domain.CmdApproveDelivery, seedBuyer, ref); err != nil {
				return err
			}
			if _, err := execute(ctx, commands, domain.CmdSubmitReview, seedBuyer,
				lifecycle.SubmitReviewInput{OrderID: orderEvt.EntityID, Rating: 5, Comment: "fast and precise"}); err != nil {
				return err
			}

			secondEvt, err := execute(ctx, commands, domain.CmdCreateOrder, seedBuyer,
				lifecycle.CreateOrderInput{ServiceID: logoEvt.EntityID})
			if err != nil {
				return err
			}
			if _, err := execute(ctx, commands, domain.CmdAcceptOrder, seedSeller,
				command.OrderRef{OrderID: secondEvt.EntityID}); err != nil {
				return err
			}

			projectEvt, err := execute(ctx, commands, domain.CmdCreateProject, seedBuyer,
				lifecycle.CreateProjectInput{Title: "Brand refresh", Budget: 1500000})
			if err != nil {
				return err
			}
			if _, err := execute(ctx, commands, domain.CmdSubmitProposal, seedSeller,
				lifecycle.SubmitProposalInput{ProjectID: projectEvt.EntityID, Price: 1200000, DeliveryDays: 21}); err != nil {
				return err
			}

			zap.L().Info("seed data written",
				zap.String("listing_id", logoEvt.EntityID),
				zap.String("completed_order_id", orderEvt.EntityID),
				zap.String("project_id", projectEvt.EntityID))

			return shutdowner.Shutdown()
		},
	})
}

func main() {
	fx.New(
		config.Module,
		logger.Module,
		gen.Module,
		pkgredis.Module,
		sequence.Module,
		store.Module,
		events.Module,
		coupon.Module,
		lifecycle.Module,
		reconciler.Module,
		command.Module,
		fx.Invoke(seed),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	).Run()
}
