package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scrapline/scrapline/internal/pkg/constants"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// registrationEvent is the welcome-mail payload
type registrationEvent struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// PublishUserRegistered announces a new account signup
func (g *UserGateway) PublishUserRegistered(ctx context.Context, user *models.User) error {
	event := registrationEvent{
		UserID:    user.ID.String(),
		FirstName: user.FirstName,
		Email:     user.Email,
		CreatedAt: models.FormatTime(models.Now()),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", constants.SubjectUserRegistered, err)
	}
	if err := g.natsClient.Publish(constants.SubjectUserRegistered, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", constants.SubjectUserRegistered, err)
	}
	return nil
}
