package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"

	"github.com/scrapline/scrapline/internal/pkg/constants"
	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/settings"
)

// SettingsRepo implements the settings.SettingsRepo interface. Reads go
// through a Redis cache; the single Postgres row is authoritative and the
// cache entry is dropped on every update.
type SettingsRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *redis.Client
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(cfg *models.Config, db *sqlx.DB, cache *redis.Client) settings.SettingsRepo {
	return &SettingsRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

// Get returns the current business settings. A missing row yields the
// compiled-in defaults rather than an error.
func (r *SettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if cached := r.fromCache(ctx); cached != nil {
		return cached, nil
	}

	var s models.Settings
	err := r.db.GetContext(ctx, &s, `
		SELECT scrap_rate_per_kg, default_checks, updated_at
		FROM settings
		WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		s = models.Settings{
			ScrapRatePerKg: models.DefaultScrapRatePerKg,
			DefaultChecks:  models.DefaultChecks,
		}
	} else if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to load settings", err)
	}

	r.toCache(ctx, &s)
	return &s, nil
}

// Update persists the settings row and invalidates the cache
func (r *SettingsRepo) Update(ctx context.Context, s *models.Settings) error {
	err := r.db.GetContext(ctx, s, `
		INSERT INTO settings (id, scrap_rate_per_kg, default_checks, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET
			scrap_rate_per_kg = EXCLUDED.scrap_rate_per_kg,
			default_checks = EXCLUDED.default_checks,
			updated_at = NOW()
		RETURNING scrap_rate_per_kg, default_checks, updated_at`,
		s.ScrapRatePerKg, s.DefaultChecks)
	if err != nil {
		return errs.Wrap(errs.Internal, "failed to update settings", err)
	}

	if err := r.cache.Del(ctx, constants.KeySettings).Err(); err != nil {
		logger.WarnCtx(ctx, "failed to invalidate settings cache",
			logger.Err(err))
	}
	return nil
}

// CurrentRate returns the live scrap rate per kilogram
func (r *SettingsRepo) CurrentRate(ctx context.Context) (float64, error) {
	s, err := r.Get(ctx)
	if err != nil {
		return 0, err
	}
	return s.ScrapRatePerKg, nil
}

// DefaultChecks returns the lookup allowance granted to new accounts
func (r *SettingsRepo) DefaultChecks(ctx context.Context) (int, error) {
	s, err := r.Get(ctx)
	if err != nil {
		return 0, err
	}
	return s.DefaultChecks, nil
}

func (r *SettingsRepo) fromCache(ctx context.Context) *models.Settings {
	data, err := r.cache.Get(ctx, constants.KeySettings).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "settings cache read failed",
				logger.Err(err))
		}
		return nil
	}
	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		logger.WarnCtx(ctx, "dropping corrupt settings cache entry",
			logger.Err(err))
		r.cache.Del(ctx, constants.KeySettings)
		return nil
	}
	return &s
}

func (r *SettingsRepo) toCache(ctx context.Context, s *models.Settings) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	ttl := time.Duration(r.cfg.Quotes.SettingsCacheTTL) * time.Second
	if err := r.cache.Set(ctx, constants.KeySettings, data, ttl).Err(); err != nil {
		logger.WarnCtx(ctx, "settings cache write failed",
			logger.Err(err))
	}
}
