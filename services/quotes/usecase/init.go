package usecase

import (
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/quotes"
)

// quoteUC implements the quotes.QuoteUC interface
type quoteUC struct {
	cfg       *models.Config
	quoteRepo quotes.QuoteRepo
	quoteGW   quotes.QuoteGW
	ledger    quotes.QuotaLedger
	pricing   quotes.PricingPolicy
}

// NewQuoteUC creates a new quote lifecycle use case
func NewQuoteUC(
	cfg *models.Config,
	quoteRepo quotes.QuoteRepo,
	quoteGW quotes.QuoteGW,
	ledger quotes.QuotaLedger,
	pricing quotes.PricingPolicy,
) (quotes.QuoteUC, error) {
	return &quoteUC{
		cfg:       cfg,
		quoteRepo: quoteRepo,
		quoteGW:   quoteGW,
		ledger:    ledger,
		pricing:   pricing,
	}, nil
}
