package usecase

import (
	"github.com/scrapline/scrapline/services/settings"
)

// settingsUC implements the settings.SettingsUC interface
type settingsUC struct {
	settingsRepo settings.SettingsRepo
}

// NewSettingsUC creates a new settings use case
func NewSettingsUC(settingsRepo settings.SettingsRepo) (settings.SettingsUC, error) {
	return &settingsUC{
		settingsRepo: settingsRepo,
	}, nil
}
