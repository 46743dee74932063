package validator

import (
	"fmt"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

var commandRoles = map[domain.CommandName][]domain.Role{
	domain.CmdCreateListing: {domain.RoleSeller, domain.RoleAdmin},
	domain.CmdCreateProject: {domain.RoleBuyer, domain.RoleAdmin},

	domain.CmdCreateOrder:     {domain.RoleBuyer},
	domain.CmdAcceptOrder:     {domain.RoleSeller},
	domain.CmdDeliverOrder:    {domain.RoleSeller},
	domain.CmdRequestRevision: {domain.RoleBuyer},
	domain.CmdApproveDelivery: {domain.RoleBuyer},
	domain.CmdCancelOrder:     {domain.RoleBuyer, domain.RoleAdmin},

	domain.CmdRequestPayout:  {domain.RoleSeller},
	domain.CmdApprovePayout:  {domain.RoleAdmin},
	domain.CmdRejectPayout:   {domain.RoleAdmin},
	domain.CmdCompletePayout: {domain.RoleAdmin},

	domain.CmdOpenDispute:    {domain.RoleBuyer, domain.RoleSeller},
	domain.CmdResolveDispute: {domain.RoleAdmin},
	domain.CmdCloseDispute:   {domain.RoleAdmin},

	domain.CmdFileReport:    {domain.RoleBuyer, domain.RoleSeller},
	domain.CmdResolveReport: {domain.RoleAdmin},
	domain.CmdDismissReport: {domain.RoleAdmin},

	domain.CmdOpenTicket:    {domain.RoleBuyer, domain.RoleSeller},
	domain.CmdAssignTicket:  {domain.RoleAdmin},
	domain.CmdResolveTicket: {domain.RoleAdmin},
	domain.CmdCloseTicket:   {domain.RoleAdmin},

	domain.CmdSubmitProposal:   {domain.RoleSeller},
	domain.CmdAcceptProposal:   {domain.RoleBuyer},
	domain.CmdRejectProposal:   {domain.RoleBuyer},
	domain.CmdWithdrawProposal: {domain.RoleSeller},

	domain.CmdSubmitReview: {domain.RoleBuyer},
	domain.CmdReplyReview:  {domain.RoleSeller},
	domain.CmdHideReview:   {domain.RoleAdmin},
	domain.CmdUnhideReview: {domain.RoleAdmin},

	domain.CmdCreateCoupon:     {domain.RoleAdmin},
	domain.CmdDeactivateCoupon: {domain.RoleAdmin},
}

// Authorize checks the caller's role against the command's allowed roles.
// Ownership (the buyer of this order, the seller of this listing) is
// checked by the lifecycle engine inside the critical section.
func Authorize(cmd domain.CommandName, role domain.Role) error {
	allowed, ok := commandRoles[cmd]
	if !ok {
		return errutil.NotFound(fmt.Sprintf("unknown command %s", cmd))
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return errutil.Authorization(fmt.Sprintf("role %s may not execute %s", role, cmd))
}

// Known reports whether the command name is registered at all.
func Known(cmd domain.CommandName) bool {
	_, ok := commandRoles[cmd]
	return ok
}
