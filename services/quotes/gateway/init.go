package gateway

import (
	"time"

	httppkg "github.com/scrapline/scrapline/internal/pkg/http"
	"github.com/scrapline/scrapline/internal/pkg/models"
	natspkg "github.com/scrapline/scrapline/internal/pkg/nats"
)

// QuoteGateway bundles the engine's outbound edges: the vehicle data API and
// the NATS notification subjects
type QuoteGateway struct {
	cfg        *models.Config
	apiClient  *httppkg.Client
	natsClient *natspkg.Client
}

// NewQuoteGW creates a new quote gateway
func NewQuoteGW(cfg *models.Config, natsClient *natspkg.Client) *QuoteGateway {
	return &QuoteGateway{
		cfg:        cfg,
		apiClient:  httppkg.NewClient(cfg.VehicleAPI.BaseURL, time.Duration(cfg.VehicleAPI.Timeout)*time.Second),
		natsClient: natsClient,
	}
}
