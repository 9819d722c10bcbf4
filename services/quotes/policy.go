package quotes

import (
	"context"

	"github.com/google/uuid"
)

// QuotaLedger tracks a user's remaining vehicle-data lookups. Decrement is
// called at most once per successful fresh fetch and is never refunded.
// go:generate mockgen -destination=mocks/mock_policy.go -package=mocks github.com/scrapline/scrapline/services/quotes QuotaLedger,PricingPolicy
type QuotaLedger interface {
	Remaining(ctx context.Context, userID uuid.UUID) (int, error)
	Decrement(ctx context.Context, userID uuid.UUID) error
}

// PricingPolicy exposes the admin-configurable scrap rate, read fresh on
// every estimate computation
type PricingPolicy interface {
	CurrentRate(ctx context.Context) (float64, error)
}
