package quotes

import (
	"context"

	"github.com/scrapline/scrapline/internal/pkg/models"
)

// QuoteGW defines the interface for quote gateway operations: the vehicle
// data lookup and the post-commit notification events.
// go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/scrapline/scrapline/services/quotes QuoteGW
type QuoteGW interface {
	FetchVehicleData(ctx context.Context, regNumber string) (*models.VehicleSnapshot, error)

	PublishManualRequested(ctx context.Context, event *models.NotificationEvent) error
	PublishQuoteReviewed(ctx context.Context, event *models.NotificationEvent) error
	PublishQuoteAccepted(ctx context.Context, event *models.NotificationEvent) error
	PublishQuoteRejected(ctx context.Context, event *models.NotificationEvent) error
	PublishQuoteCollected(ctx context.Context, event *models.NotificationEvent) error
}
