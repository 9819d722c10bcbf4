package settings

import (
	"context"

	"github.com/scrapline/scrapline/internal/pkg/models"
)

// SettingsRepo defines the interface for settings data access. CurrentRate
// and DefaultChecks are the read paths consumed by the quote engine and the
// signup flow respectively.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapline/scrapline/services/settings SettingsRepo
type SettingsRepo interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error

	CurrentRate(ctx context.Context) (float64, error)
	DefaultChecks(ctx context.Context) (int, error)
}
