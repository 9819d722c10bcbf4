package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/quotes"
)

// ConfirmCollection is the accept-with-details step: the client locks in the
// offered price and supplies pickup logistics in one call. Acceptance is
// terminal; double-accepts and resubmitted collection details fail on the
// precondition instead of overwriting the committed state.
func (uc *quoteUC) ConfirmCollection(ctx context.Context, userID uuid.UUID, quoteID uuid.UUID, req *models.CollectionRequest) (*models.QuoteResult, error) {
	if req == nil {
		return nil, errs.New(errs.InvalidInput, "request body is required")
	}
	pickup, err := parsePickupDate(req.PickupDate)
	if err != nil {
		return nil, err
	}
	if !utils.ValidatePhoneNumber(req.ContactNumber) {
		return nil, errs.New(errs.InvalidInput, "contact number is not a valid phone number")
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, errs.New(errs.InvalidInput, "collection address is required")
	}

	quote, err := uc.getOwnedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	if !quotes.CanTransition(quote.State(), quotes.ActionAccept) {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"quote cannot be accepted in its current state")
	}
	if quote.CollectionDetails != nil {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"collection details already submitted for this quote")
	}

	final := quote.LockedPrice()
	if final == nil {
		return nil, errs.Conflict(string(models.StatusManualPendingReview),
			"quote has no offered price to accept; request a manual review first")
	}

	now := models.Now()
	quote.ClientDecision = models.DecisionAccepted
	quote.AcceptedAt = &now
	quote.FinalPrice = final
	quote.CollectionDetails = &models.CollectionDetails{
		PickupDate:    pickup,
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Address:       strings.TrimSpace(req.Address),
		Collected:     false,
	}
	quote.UpdatedAt = now

	if err := uc.quoteRepo.AcceptQuote(ctx, quote); err != nil {
		return nil, err
	}

	uc.publish(ctx, "quote accepted", uc.quoteGW.PublishQuoteAccepted, &models.NotificationEvent{
		QuoteID:    quote.ID,
		UserID:     quote.UserID,
		RegNumber:  quote.RegNumber,
		Status:     models.StatusAcceptedPendingCollection,
		Price:      quote.FinalPrice,
		PickupDate: &quote.CollectionDetails.PickupDate,
		OccurredAt: now,
	})

	logger.InfoCtx(ctx, "quote accepted",
		logger.String("quote_id", quote.ID.String()),
		logger.Float64("final_price", *quote.FinalPrice))
	return &models.QuoteResult{Status: models.StatusAcceptedPendingCollection, Quote: quote}, nil
}

// RejectQuote records the client turning down a reviewed manual offer. This
// is the transition that makes the record eligible for resurrection via a new
// manual request.
func (uc *quoteUC) RejectQuote(ctx context.Context, userID uuid.UUID, quoteID uuid.UUID, reason string) (*models.QuoteResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.New(errs.InvalidInput, "rejection reason is required")
	}

	quote, err := uc.getOwnedQuote(ctx, userID, quoteID)
	if err != nil {
		return nil, err
	}

	if !quotes.CanTransition(quote.State(), quotes.ActionReject) {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"only a reviewed manual quote awaiting a decision can be rejected")
	}

	now := models.Now()
	quote.ClientDecision = models.DecisionRejected
	quote.RejectionReason = reason
	quote.RejectedAt = &now
	quote.UpdatedAt = now

	if err := uc.quoteRepo.RejectQuote(ctx, quote); err != nil {
		return nil, err
	}

	uc.publish(ctx, "quote rejected", uc.quoteGW.PublishQuoteRejected, &models.NotificationEvent{
		QuoteID:    quote.ID,
		UserID:     quote.UserID,
		RegNumber:  quote.RegNumber,
		Status:     models.StatusManualPreviouslyRejected,
		Price:      quote.AdminOfferPrice,
		Message:    reason,
		OccurredAt: now,
	})

	logger.InfoCtx(ctx, "quote rejected",
		logger.String("quote_id", quote.ID.String()),
		logger.String("reason", reason))
	return &models.QuoteResult{Status: models.StatusManualPreviouslyRejected, Quote: quote}, nil
}

// GetUserQuotes returns the caller's quote history, newest first
func (uc *quoteUC) GetUserQuotes(ctx context.Context, userID uuid.UUID) ([]*models.Quote, error) {
	list, err := uc.quoteRepo.GetQuotesByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to list quotes", err)
	}
	return list, nil
}

// getOwnedQuote loads a quote and verifies it belongs to the caller. A quote
// owned by someone else reads as not found, not as forbidden.
func (uc *quoteUC) getOwnedQuote(ctx context.Context, userID uuid.UUID, quoteID uuid.UUID) (*models.Quote, error) {
	quote, err := uc.quoteRepo.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.UserID != userID {
		return nil, errs.New(errs.NotFound, "quote not found")
	}
	return quote, nil
}

// parsePickupDate accepts RFC3339 or a bare date and requires a future time
func parsePickupDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.New(errs.InvalidInput, "pickup date is required")
	}

	pickup, err := models.ParseTime(raw)
	if err != nil {
		pickup, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return time.Time{}, errs.New(errs.InvalidInput, "pickup date must be RFC3339 or YYYY-MM-DD")
	}
	if !pickup.After(models.Now()) {
		return time.Time{}, errs.New(errs.InvalidInput, "pickup date must be in the future")
	}
	return pickup.UTC(), nil
}
