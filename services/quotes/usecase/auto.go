package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/internal/utils"
)

// RequestAutoQuote is the entry point for a user asking what their car is
// worth. Existing records short-circuit the request in strict priority order:
// an accepted quote is terminal, an existing auto quote is served from cache,
// a manual quote in flight reports its review state. Only when nothing
// resolves the request does a fresh lookup spend one of the user's checks.
func (uc *quoteUC) RequestAutoQuote(ctx context.Context, userID uuid.UUID, regNumber string) (*models.QuoteResult, error) {
	reg := utils.NormalizeRegNumber(regNumber)
	if !utils.ValidateRegNumber(reg) {
		return nil, errs.New(errs.InvalidInput, "registration number is required")
	}

	existing, err := uc.quoteRepo.GetQuotesByUserAndReg(ctx, userID, reg)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to look up existing quotes", err)
	}

	// Acceptance wins over everything, regardless of kind
	for _, q := range existing {
		switch q.State() {
		case models.StateCollected:
			return &models.QuoteResult{Status: models.StatusAcceptedCollected, Quote: q}, nil
		case models.StateAccepted:
			return &models.QuoteResult{Status: models.StatusAcceptedPendingCollection, Quote: q}, nil
		}
	}

	// Auto quotes are never regenerated; the lookup was already consumed
	if q := findByKind(existing, models.QuoteKindAuto); q != nil {
		return &models.QuoteResult{Status: models.StatusCachedQuote, Quote: q}, nil
	}

	if q := findByKind(existing, models.QuoteKindManual); q != nil {
		switch q.State() {
		case models.StateRejected:
			return &models.QuoteResult{Status: models.StatusManualPreviouslyRejected, Quote: q}, nil
		case models.StateManualReviewed:
			return &models.QuoteResult{Status: models.StatusManualReviewed, Quote: q}, nil
		default:
			return &models.QuoteResult{Status: models.StatusManualPendingReview, Quote: q}, nil
		}
	}

	remaining, err := uc.ledger.Remaining(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to read lookup allowance", err)
	}
	if remaining <= 0 {
		return nil, &errs.Error{
			Kind:      errs.QuotaExhausted,
			Message:   "no vehicle lookups remaining",
			StateCode: string(models.StatusChecksExhausted),
		}
	}

	vehicle, err := uc.quoteGW.FetchVehicleData(ctx, reg)
	if err != nil {
		return nil, err
	}

	// The check is spent once the fetch succeeds. A failure past this point
	// does not refund it; a leaked check is cheap to reconcile manually,
	// a double-free race is not.
	if err := uc.ledger.Decrement(ctx, userID); err != nil {
		logger.WarnCtx(ctx, "failed to decrement lookup allowance",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}

	quote := &models.Quote{
		ID:             uuid.New(),
		UserID:         userID,
		RegNumber:      vehicle.VRM,
		Kind:           models.QuoteKindAuto,
		VehicleData:    vehicle,
		EstimatedPrice: uc.estimatePrice(ctx, vehicle),
		ClientDecision: models.DecisionPending,
	}

	saved, err := uc.quoteRepo.UpsertAutoQuote(ctx, quote)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to save quote", err)
	}

	logger.InfoCtx(ctx, "generated auto quote",
		logger.String("quote_id", saved.ID.String()),
		logger.String("reg_number", saved.RegNumber),
		logger.Int("checks_remaining", remaining-1))
	return &models.QuoteResult{Status: models.StatusNewGenerated, Quote: saved}, nil
}

// estimatePrice computes weight x rate from the live settings rate. Nil when
// the snapshot carries no usable weight.
func (uc *quoteUC) estimatePrice(ctx context.Context, vehicle *models.VehicleSnapshot) *float64 {
	weight := vehicle.PricingWeight()
	if weight == nil {
		return nil
	}

	rate, err := uc.pricing.CurrentRate(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "falling back to default scrap rate",
			logger.Err(err))
		rate = models.DefaultScrapRatePerKg
	}

	price := *weight * rate
	return &price
}

func findByKind(list []*models.Quote, kind models.QuoteKind) *models.Quote {
	for _, q := range list {
		if q.Kind == kind {
			return q
		}
	}
	return nil
}
