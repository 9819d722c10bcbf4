package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

const defaultListLimit = 50

// ListQuotes is the admin read side: every provided filter must match, with
// case-insensitive substring matching inside each dimension
func (uc *quoteUC) ListQuotes(ctx context.Context, filter models.QuoteListFilter) ([]*models.QuoteWithUser, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	list, err := uc.quoteRepo.ListQuotes(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to list quotes", err)
	}
	return list, nil
}

// DeleteQuote permanently removes a quote record. Admin-only; the lifecycle
// never deletes rows on its own.
func (uc *quoteUC) DeleteQuote(ctx context.Context, quoteID uuid.UUID) error {
	if err := uc.quoteRepo.DeleteQuote(ctx, quoteID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "quote deleted",
		logger.String("quote_id", quoteID.String()))
	return nil
}
