package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/quotes"
)

// SubmitManualQuote converts an existing quote into a manual-review request,
// or resurrects a rejected one in place. A manual request never originates a
// record from nothing; the auto-quote flow must have run first.
func (uc *quoteUC) SubmitManualQuote(ctx context.Context, userID uuid.UUID, regNumber string, req *models.ManualQuoteRequest) (*models.QuoteResult, error) {
	reg := utils.NormalizeRegNumber(regNumber)
	if !utils.ValidateRegNumber(reg) {
		return nil, errs.New(errs.InvalidInput, "registration number is required")
	}
	if req == nil {
		return nil, errs.New(errs.InvalidInput, "request body is required")
	}

	existing, err := uc.quoteRepo.GetQuotesByUserAndReg(ctx, userID, reg)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to look up existing quotes", err)
	}
	if len(existing) == 0 {
		return nil, errs.New(errs.NotFound, "no existing quote for this registration; request a valuation first")
	}

	// The manual lineage, if one exists, is the record the request refreshes
	quote := findByKind(existing, models.QuoteKindManual)
	if quote == nil {
		quote = findByKind(existing, models.QuoteKindAuto)
	}

	state := quote.State()
	if !quotes.CanTransition(state, quotes.ActionSubmitManual) {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"quote cannot take a manual review request in its current state")
	}

	wasAuto := quote.Kind == models.QuoteKindAuto
	uc.applyManualRequest(quote, req)

	if err := uc.quoteRepo.SaveManualRequest(ctx, quote); err != nil {
		return nil, err
	}

	uc.publish(ctx, "manual review requested", uc.quoteGW.PublishManualRequested, &models.NotificationEvent{
		QuoteID:    quote.ID,
		UserID:     quote.UserID,
		RegNumber:  quote.RegNumber,
		Status:     models.StatusManualPendingReview,
		Price:      req.UserEstimatedPrice,
		Message:    req.Message,
		OccurredAt: models.Now(),
	})

	status := models.StatusManualInfoAppended
	if wasAuto {
		status = models.StatusManualSubmitted
	}
	logger.InfoCtx(ctx, "manual quote submitted",
		logger.String("quote_id", quote.ID.String()),
		logger.String("reg_number", quote.RegNumber),
		logger.String("reason", string(quote.ManualDetails.Reason)))
	return &models.QuoteResult{Status: status, Quote: quote}, nil
}

// applyManualRequest performs the reset-and-reuse mutation: merge missing
// vehicle attributes, append images up to the cap, flip the record into a
// fresh pending manual cycle and clear the prior review and rejection fields.
func (uc *quoteUC) applyManualRequest(quote *models.Quote, req *models.ManualQuoteRequest) {
	now := models.Now()

	if quote.VehicleData == nil {
		quote.VehicleData = &models.VehicleSnapshot{VRM: quote.RegNumber}
	}
	mergeVehicleAttributes(quote.VehicleData, req)

	if quote.ManualDetails == nil {
		quote.ManualDetails = &models.ManualDetails{}
	}
	md := quote.ManualDetails
	md.Images = appendImages(md.Images, req.Images, uc.cfg.Quotes.ManualImageCap)
	if req.UserEstimatedPrice != nil {
		md.UserEstimatedPrice = req.UserEstimatedPrice
	}
	if req.UserProvidedWeight != nil {
		md.UserProvidedWeight = req.UserProvidedWeight
	}
	if req.Message != "" {
		md.Message = req.Message
	}
	md.Reason = deriveReason(quote.EstimatedPrice, md.UserEstimatedPrice)
	md.LastManualRequestAt = &now

	quote.Kind = models.QuoteKindManual
	quote.IsReviewedByAdmin = false
	quote.ReviewedAt = nil
	quote.AdminOfferPrice = nil
	quote.AdminMessage = ""
	quote.FinalPrice = nil
	quote.ClientDecision = models.DecisionPending
	quote.RejectionReason = ""
	quote.RejectedAt = nil
	quote.UpdatedAt = now
}

// mergeVehicleAttributes fills gaps the fetched snapshot left open. Fields
// already populated from the vehicle API are never overwritten.
func mergeVehicleAttributes(v *models.VehicleSnapshot, req *models.ManualQuoteRequest) {
	if v.Make == "" && req.Make != "" {
		v.Make = req.Make
	}
	if v.Model == "" && req.Model != "" {
		v.Model = req.Model
	}
	if v.FuelType == "" && req.FuelType != "" {
		v.FuelType = req.FuelType
	}
	if v.YearOfManufacture == 0 && req.Year != 0 {
		v.YearOfManufacture = req.Year
	}
	if v.PricingWeight() == nil && req.UserProvidedWeight != nil {
		v.KerbWeightKg = req.UserProvidedWeight
	}
}

// appendImages appends new uploads and keeps the newest limit entries
func appendImages(current, uploaded []string, limit int) []string {
	merged := append(append([]string{}, current...), uploaded...)
	if limit > 0 && len(merged) > limit {
		merged = merged[len(merged)-limit:]
	}
	return merged
}

// deriveReason explains why the quote needs human pricing
func deriveReason(estimated, userEstimate *float64) models.ManualQuoteReason {
	if estimated == nil {
		return models.ReasonAutoPriceMissing
	}
	if userEstimate != nil && *userEstimate > *estimated {
		return models.ReasonUserThinksValueHigher
	}
	return models.ReasonUserRequestedReview
}

// publish sends a post-commit notification event. Delivery is best-effort:
// failures are logged and never surfaced to the caller.
func (uc *quoteUC) publish(ctx context.Context, name string, fn func(context.Context, *models.NotificationEvent) error, event *models.NotificationEvent) {
	if err := fn(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish notification",
			logger.String("event", name),
			logger.String("quote_id", event.QuoteID.String()),
			logger.Err(err))
	}
}
