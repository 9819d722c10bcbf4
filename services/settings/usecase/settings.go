package usecase

import (
	"context"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// Get returns the current business settings
func (uc *settingsUC) Get(ctx context.Context) (*models.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

// Update applies the non-nil fields of the request and returns the stored row
func (uc *settingsUC) Update(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error) {
	if update == nil || (update.ScrapRatePerKg == nil && update.DefaultChecks == nil) {
		return nil, errs.New(errs.InvalidInput, "at least one settings field is required")
	}

	current, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if update.ScrapRatePerKg != nil {
		if *update.ScrapRatePerKg <= 0 {
			return nil, errs.New(errs.InvalidInput, "scrap rate must be greater than zero")
		}
		current.ScrapRatePerKg = *update.ScrapRatePerKg
	}
	if update.DefaultChecks != nil {
		if *update.DefaultChecks < 0 {
			return nil, errs.New(errs.InvalidInput, "default checks cannot be negative")
		}
		current.DefaultChecks = *update.DefaultChecks
	}

	if err := uc.settingsRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "business settings updated",
		logger.Float64("scrap_rate_per_kg", current.ScrapRatePerKg),
		logger.Int("default_checks", current.DefaultChecks))
	return current, nil
}
