package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scrapline/scrapline/internal/pkg/constants"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// PublishManualRequested announces a new or resubmitted manual review request
func (g *QuoteGateway) PublishManualRequested(ctx context.Context, event *models.NotificationEvent) error {
	return g.publishEvent(constants.SubjectQuoteManualRequested, event)
}

// PublishQuoteReviewed announces an admin pricing decision
func (g *QuoteGateway) PublishQuoteReviewed(ctx context.Context, event *models.NotificationEvent) error {
	return g.publishEvent(constants.SubjectQuoteReviewed, event)
}

// PublishQuoteAccepted announces a client acceptance with collection details
func (g *QuoteGateway) PublishQuoteAccepted(ctx context.Context, event *models.NotificationEvent) error {
	return g.publishEvent(constants.SubjectQuoteAccepted, event)
}

// PublishQuoteRejected announces a client rejection
func (g *QuoteGateway) PublishQuoteRejected(ctx context.Context, event *models.NotificationEvent) error {
	return g.publishEvent(constants.SubjectQuoteRejected, event)
}

// PublishQuoteCollected announces a completed vehicle collection
func (g *QuoteGateway) PublishQuoteCollected(ctx context.Context, event *models.NotificationEvent) error {
	return g.publishEvent(constants.SubjectQuoteCollected, event)
}

func (g *QuoteGateway) publishEvent(subject string, event *models.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", subject, err)
	}
	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}
