package quotes

import (
	"context"

	"github.com/google/uuid"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// QuoteRepo defines the interface for quote data access operations.
//
// Mutating methods other than UpsertAutoQuote perform conditional updates:
// the WHERE clause re-checks the state precondition so a stale caller racing
// a concurrent transition fails cleanly instead of overwriting newer state.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapline/scrapline/services/quotes QuoteRepo
type QuoteRepo interface {
	GetQuotesByUserAndReg(ctx context.Context, userID uuid.UUID, regNumber string) ([]*models.Quote, error)
	GetQuoteByID(ctx context.Context, quoteID uuid.UUID) (*models.Quote, error)
	GetQuotesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quote, error)

	// UpsertAutoQuote atomically creates or refreshes the auto quote keyed on
	// (user_id, reg_number, kind) and returns the persisted row.
	UpsertAutoQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error)

	SaveManualRequest(ctx context.Context, quote *models.Quote) error
	AcceptQuote(ctx context.Context, quote *models.Quote) error
	RejectQuote(ctx context.Context, quote *models.Quote) error
	ReviewQuote(ctx context.Context, quote *models.Quote) error
	MarkCollected(ctx context.Context, quoteID uuid.UUID) error

	ListQuotes(ctx context.Context, filter models.QuoteListFilter) ([]*models.QuoteWithUser, error)
	DeleteQuote(ctx context.Context, quoteID uuid.UUID) error
}
