package quotes

import (
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// Action is a lifecycle mutation attempted against a quote
type Action string

const (
	ActionSubmitManual  Action = "submit_manual"
	ActionReview        Action = "review"
	ActionAccept        Action = "accept"
	ActionReject        Action = "reject"
	ActionMarkCollected Action = "mark_collected"
)

// transitions is the single source of truth for which actions are legal in
// which lifecycle state. Every mutating operation consults this table before
// touching the record; per-handler conditional chains are not allowed.
//
// Notable rows:
//   - rejected quotes admit only resubmission (resurrection in place)
//   - reject requires a completed review, so it is absent from manual_requested
//   - mark_collected stays legal in collected; setting the flag twice is a no-op
var transitions = map[models.QuoteState]map[Action]bool{
	models.StateAutoPriced: {
		ActionSubmitManual: true,
		ActionAccept:       true,
	},
	models.StateManualRequested: {
		ActionReview: true,
		ActionAccept: true,
	},
	models.StateManualReviewed: {
		ActionAccept: true,
		ActionReject: true,
	},
	models.StateAccepted: {
		ActionMarkCollected: true,
	},
	models.StateCollected: {
		ActionMarkCollected: true,
	},
	models.StateRejected: {
		ActionSubmitManual: true,
	},
}

// CanTransition reports whether the action is legal for a quote in the given state
func CanTransition(state models.QuoteState, action Action) bool {
	allowed, ok := transitions[state]
	if !ok {
		return false
	}
	return allowed[action]
}

// BlockingStatus maps a quote's current state to the contract status returned
// when that state blocks an operation, so clients can branch on what the
// record actually is instead of a generic conflict.
func BlockingStatus(q *models.Quote) models.QuoteStatus {
	switch q.State() {
	case models.StateCollected:
		return models.StatusAcceptedCollected
	case models.StateAccepted:
		return models.StatusAcceptedPendingCollection
	case models.StateManualReviewed:
		return models.StatusManualReviewed
	case models.StateManualRequested:
		return models.StatusManualPendingReview
	case models.StateRejected:
		return models.StatusManualPreviouslyRejected
	default:
		return models.StatusCachedQuote
	}
}
