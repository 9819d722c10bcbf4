package settings

import (
	"context"

	"github.com/scrapline/scrapline/internal/pkg/models"
)

// SettingsUC defines the interface for business-settings administration
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapline/scrapline/services/settings SettingsUC
type SettingsUC interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error)
}
