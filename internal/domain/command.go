package domain

// CommandName identifies one externally issuable state change.
type CommandName string

const (
	CmdCreateListing CommandName = "CreateListing"
	CmdCreateProject CommandName = "CreateProject"

	CmdCreateOrder     CommandName = "CreateOrder"
	CmdAcceptOrder     CommandName = "AcceptOrder"
	CmdDeliverOrder    CommandName = "DeliverOrder"
	CmdRequestRevision CommandName = "RequestRevision"
	CmdApproveDelivery CommandName = "ApproveDelivery"
	CmdCancelOrder     CommandName = "CancelOrder"

	CmdRequestPayout  CommandName = "RequestPayout"
	CmdApprovePayout  CommandName = "ApprovePayout"
	CmdRejectPayout   CommandName = "RejectPayout"
	CmdCompletePayout CommandName = "CompletePayout"

	CmdOpenDispute    CommandName = "OpenDispute"
	CmdResolveDispute CommandName = "ResolveDispute"
	CmdCloseDispute   CommandName = "CloseDispute"

	CmdFileReport    CommandName = "FileReport"
	CmdResolveReport CommandName = "ResolveReport"
	CmdDismissReport CommandName = "DismissReport"

	CmdOpenTicket    CommandName = "OpenTicket"
	CmdAssignTicket  CommandName = "AssignTicket"
	CmdResolveTicket CommandName = "ResolveTicket"
	CmdCloseTicket   CommandName = "CloseTicket"

	CmdSubmitProposal   CommandName = "SubmitProposal"
	CmdAcceptProposal   CommandName = "AcceptProposal"
	CmdRejectProposal   CommandName = "RejectProposal"
	CmdWithdrawProposal CommandName = "WithdrawProposal"

	CmdSubmitReview  CommandName = "SubmitReview"
	CmdReplyReview   CommandName = "ReplyReview"
	CmdHideReview    CommandName = "HideReview"
	CmdUnhideReview  CommandName = "UnhideReview"

	CmdCreateCoupon     CommandName = "CreateCoupon"
	CmdDeactivateCoupon CommandName = "DeactivateCoupon"
)
