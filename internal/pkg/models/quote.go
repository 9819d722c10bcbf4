package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteKind distinguishes system-priced quotes from human-reviewed ones
type QuoteKind string

const (
	QuoteKindAuto   QuoteKind = "auto"
	QuoteKindManual QuoteKind = "manual"
)

// ClientDecision represents the client's decision on a quote
type ClientDecision string

const (
	DecisionPending  ClientDecision = "pending"
	DecisionAccepted ClientDecision = "accepted"
	DecisionRejected ClientDecision = "rejected"
)

// QuoteStatus values are part of the API contract; clients branch on them
type QuoteStatus string

const (
	StatusNewGenerated              QuoteStatus = "new_generated"
	StatusCachedQuote               QuoteStatus = "cached_quote"
	StatusAcceptedCollected         QuoteStatus = "accepted_collected"
	StatusAcceptedPendingCollection QuoteStatus = "accepted_pending_collection"
	StatusManualPendingReview       QuoteStatus = "manual_pending_review"
	StatusManualReviewed            QuoteStatus = "manual_reviewed"
	StatusManualPreviouslyRejected  QuoteStatus = "manual_previously_rejected"
	StatusManualSubmitted           QuoteStatus = "manual_submitted"
	StatusManualInfoAppended        QuoteStatus = "manual_info_appended"
	StatusChecksExhausted           QuoteStatus = "dvla_checks_exhausted"
)

// ManualQuoteReason explains why a quote went to human review
type ManualQuoteReason string

const (
	ReasonAutoPriceMissing      ManualQuoteReason = "auto_price_missing"
	ReasonUserThinksValueHigher ManualQuoteReason = "user_thinks_value_higher"
	ReasonUserRequestedReview   ManualQuoteReason = "user_requested_review"
)

// QuoteState is the explicit lifecycle state derived from the persisted field
// cross-product. Mutating operations consult the transition table keyed on it
// instead of re-deriving conditionals per handler.
type QuoteState string

const (
	StateAutoPriced      QuoteState = "auto_priced"
	StateManualRequested QuoteState = "manual_requested"
	StateManualReviewed  QuoteState = "manual_reviewed"
	StateAccepted        QuoteState = "accepted"
	StateCollected       QuoteState = "collected"
	StateRejected        QuoteState = "rejected"
)

// ManualDetails holds the user-supplied data backing a manual review request.
// Only meaningful when Kind is manual.
type ManualDetails struct {
	Images              []string          `json:"images"`
	UserEstimatedPrice  *float64          `json:"user_estimated_price,omitempty"`
	UserProvidedWeight  *float64          `json:"user_provided_weight,omitempty"`
	Message             string            `json:"message,omitempty"`
	Reason              ManualQuoteReason `json:"manual_quote_reason,omitempty"`
	LastManualRequestAt *time.Time        `json:"last_manual_request_at,omitempty"`
}

// CollectionDetails is created at acceptance time and records pickup logistics
type CollectionDetails struct {
	PickupDate    time.Time `json:"pickup_date"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	Collected     bool      `json:"collected"`
}

// Quote is the central entity: one row per (user, registration) lineage
type Quote struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	RegNumber string    `json:"reg_number" db:"reg_number"`
	Kind      QuoteKind `json:"kind" db:"kind"`

	VehicleData    *VehicleSnapshot `json:"vehicle_data,omitempty"`
	EstimatedPrice *float64         `json:"estimated_price,omitempty" db:"estimated_price"`

	ManualDetails *ManualDetails `json:"manual_details,omitempty"`

	AdminOfferPrice   *float64   `json:"admin_offer_price,omitempty" db:"admin_offer_price"`
	AdminMessage      string     `json:"admin_message,omitempty" db:"admin_message"`
	IsReviewedByAdmin bool       `json:"is_reviewed_by_admin" db:"is_reviewed_by_admin"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`

	FinalPrice *float64 `json:"final_price,omitempty" db:"final_price"`

	ClientDecision  ClientDecision `json:"client_decision" db:"client_decision"`
	RejectionReason string         `json:"rejection_reason,omitempty" db:"rejection_reason"`
	RejectedAt      *time.Time     `json:"rejected_at,omitempty" db:"rejected_at"`
	AcceptedAt      *time.Time     `json:"accepted_at,omitempty" db:"accepted_at"`

	CollectionDetails *CollectionDetails `json:"collection_details,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// State derives the lifecycle state from the persisted fields. This is the
// single place that interprets the kind/decision/reviewed/collected cross-product.
func (q *Quote) State() QuoteState {
	switch q.ClientDecision {
	case DecisionAccepted:
		if q.CollectionDetails != nil && q.CollectionDetails.Collected {
			return StateCollected
		}
		return StateAccepted
	case DecisionRejected:
		return StateRejected
	}

	if q.Kind == QuoteKindManual {
		if q.IsReviewedByAdmin {
			return StateManualReviewed
		}
		return StateManualRequested
	}
	return StateAutoPriced
}

// LockedPrice returns the price that would be locked in at acceptance:
// the admin offer for a reviewed manual quote, otherwise the system estimate.
func (q *Quote) LockedPrice() *float64 {
	if q.Kind == QuoteKindManual && q.AdminOfferPrice != nil {
		return q.AdminOfferPrice
	}
	return q.EstimatedPrice
}

// QuoteListFilter holds the optional admin listing filters. Every provided
// filter must match (logical AND), case-insensitive substring within each.
type QuoteListFilter struct {
	Kind       QuoteKind
	Decision   ClientDecision
	Reviewed   *bool
	Collected  *bool
	RegNumber  string
	Make       string
	Model      string
	UserSearch string // matches joined user name, email or phone
	Limit      int
	Offset     int
}

// QuoteWithUser is a listing row joined with owner identity for the admin views
type QuoteWithUser struct {
	Quote
	UserFirstName string `json:"user_first_name" db:"first_name"`
	UserLastName  string `json:"user_last_name" db:"last_name"`
	UserEmail     string `json:"user_email" db:"email"`
	UserPhone     string `json:"user_phone" db:"phone"`
}

// QuoteResult is what every lifecycle operation returns: the quote plus the
// contract status describing what happened (or what blocked the call).
type QuoteResult struct {
	Status QuoteStatus `json:"status"`
	Quote  *Quote      `json:"quote,omitempty"`
}
