package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/quotes"
)

// ReviewManualQuote records the admin's pricing decision on a pending manual
// quote. A quote is reviewed at most once per cycle; pricing it again requires
// the client to reject and resubmit first.
func (uc *quoteUC) ReviewManualQuote(ctx context.Context, quoteID uuid.UUID, offerPrice float64, message string) (*models.QuoteResult, error) {
	if offerPrice < 0 {
		return nil, errs.New(errs.InvalidInput, "offer price must be a non-negative number")
	}

	quote, err := uc.quoteRepo.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if !quotes.CanTransition(quote.State(), quotes.ActionReview) {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"only a pending manual quote can be reviewed")
	}

	now := models.Now()
	quote.AdminOfferPrice = &offerPrice
	quote.AdminMessage = message
	quote.IsReviewedByAdmin = true
	quote.ReviewedAt = &now
	// Pre-computed optimistically; only authoritative once the client accepts
	quote.FinalPrice = &offerPrice
	quote.UpdatedAt = now

	if err := uc.quoteRepo.ReviewQuote(ctx, quote); err != nil {
		return nil, err
	}

	uc.publish(ctx, "quote reviewed", uc.quoteGW.PublishQuoteReviewed, &models.NotificationEvent{
		QuoteID:    quote.ID,
		UserID:     quote.UserID,
		RegNumber:  quote.RegNumber,
		Status:     models.StatusManualReviewed,
		Price:      quote.AdminOfferPrice,
		Message:    message,
		OccurredAt: now,
	})

	logger.InfoCtx(ctx, "manual quote reviewed",
		logger.String("quote_id", quote.ID.String()),
		logger.Float64("offer_price", offerPrice))
	return &models.QuoteResult{Status: models.StatusManualReviewed, Quote: quote}, nil
}

// MarkCollected flips the collected flag on an accepted quote. Repeating the
// call is a no-op in effect, but the state is re-validated every time.
func (uc *quoteUC) MarkCollected(ctx context.Context, quoteID uuid.UUID) (*models.QuoteResult, error) {
	quote, err := uc.quoteRepo.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if !quotes.CanTransition(quote.State(), quotes.ActionMarkCollected) {
		return nil, errs.Conflict(string(quotes.BlockingStatus(quote)),
			"only an accepted quote with collection details can be marked collected")
	}

	if err := uc.quoteRepo.MarkCollected(ctx, quoteID); err != nil {
		return nil, err
	}
	alreadyCollected := quote.CollectionDetails.Collected
	quote.CollectionDetails.Collected = true
	quote.UpdatedAt = models.Now()

	if !alreadyCollected {
		uc.publish(ctx, "vehicle collected", uc.quoteGW.PublishQuoteCollected, &models.NotificationEvent{
			QuoteID:    quote.ID,
			UserID:     quote.UserID,
			RegNumber:  quote.RegNumber,
			Status:     models.StatusAcceptedCollected,
			Price:      quote.FinalPrice,
			OccurredAt: models.Now(),
		})
	}

	return &models.QuoteResult{Status: models.StatusAcceptedCollected, Quote: quote}, nil
}
