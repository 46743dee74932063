package validator

import (
	"fmt"

	"giglane/internal/domain"
	"giglane/pkg/errutil"
)

// transitions is the single source of truth for status legality, one
// adjacency list per entity kind. A transition absent from the table is
// illegal. Self-loops model commands that rework an entity without moving
// it (delivery, revision, review reply).
var transitions = map[domain.Kind]map[domain.Status][]domain.Status{
	domain.KindOrder: {
		domain.StatusPending:    {domain.StatusInProgress, domain.StatusCancelled},
		domain.StatusInProgress: {domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled},
	},
	domain.KindPayout: {
		domain.StatusPending:  {domain.StatusApproved, domain.StatusRejected},
		domain.StatusApproved: {domain.StatusCompleted},
	},
	domain.KindDispute: {
		domain.StatusOpen:     {domain.StatusResolved},
		domain.StatusResolved: {domain.StatusClosed},
	},
	domain.KindReport: {
		domain.StatusOpen: {domain.StatusResolved, domain.StatusDismissed},
	},
	domain.KindTicket: {
		domain.StatusOpen:       {domain.StatusInProgress},
		domain.StatusInProgress: {domain.StatusResolved, domain.StatusClosed},
		domain.StatusResolved:   {domain.StatusClosed},
	},
	domain.KindProposal: {
		domain.StatusSent: {domain.StatusAccepted, domain.StatusRejected, domain.StatusWithdrawn},
	},
	domain.KindReview: {
		domain.StatusVisible: {domain.StatusVisible, domain.StatusHidden},
		domain.StatusHidden:  {domain.StatusVisible},
	},
	domain.KindProject: {
		domain.StatusOpen: {domain.StatusInProgress},
	},
}

// Transition reports whether moving kind from one status to another is
// defined by the adjacency table.
func Transition(kind domain.Kind, from, to domain.Status) error {
	for _, next := range transitions[kind][from] {
		if next == to {
			return nil
		}
	}
	return errutil.Transition(fmt.Sprintf("illegal %s transition %s -> %s", kind, from, to))
}

// Terminal reports whether no transition leaves the given status.
func Terminal(kind domain.Kind, status domain.Status) bool {
	return len(transitions[kind][status]) == 0
}
