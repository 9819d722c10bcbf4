package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent is the payload published on quote.* subjects after a state
// transition commits. The downstream mailer renders templates from it; the
// engine only guarantees the structured data, never delivery.
type NotificationEvent struct {
	QuoteID    uuid.UUID   `json:"quote_id"`
	UserID     uuid.UUID   `json:"user_id"`
	UserName   string      `json:"user_name,omitempty"`
	UserEmail  string      `json:"user_email,omitempty"`
	RegNumber  string      `json:"reg_number"`
	Status     QuoteStatus `json:"status"`
	Price      *float64    `json:"price,omitempty"`
	Message    string      `json:"message,omitempty"`
	PickupDate *time.Time  `json:"pickup_date,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
