package quotes

import (
	"context"

	"github.com/google/uuid"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// QuoteUC defines the interface for quote lifecycle business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapline/scrapline/services/quotes QuoteUC
type QuoteUC interface {
	RequestAutoQuote(ctx context.Context, userID uuid.UUID, regNumber string) (*models.QuoteResult, error)
	SubmitManualQuote(ctx context.Context, userID uuid.UUID, regNumber string, req *models.ManualQuoteRequest) (*models.QuoteResult, error)
	ConfirmCollection(ctx context.Context, userID uuid.UUID, quoteID uuid.UUID, req *models.CollectionRequest) (*models.QuoteResult, error)
	RejectQuote(ctx context.Context, userID uuid.UUID, quoteID uuid.UUID, reason string) (*models.QuoteResult, error)
	GetUserQuotes(ctx context.Context, userID uuid.UUID) ([]*models.Quote, error)

	ReviewManualQuote(ctx context.Context, quoteID uuid.UUID, offerPrice float64, message string) (*models.QuoteResult, error)
	MarkCollected(ctx context.Context, quoteID uuid.UUID) (*models.QuoteResult, error)
	ListQuotes(ctx context.Context, filter models.QuoteListFilter) ([]*models.QuoteWithUser, error)
	DeleteQuote(ctx context.Context, quoteID uuid.UUID) error
}
