package models

import "time"

// Settings is the single-row, admin-mutable business configuration.
// ScrapRatePerKg is read fresh on every estimate computation.
type Settings struct {
	ScrapRatePerKg float64   `json:"scrap_rate_per_kg" db:"scrap_rate_per_kg"`
	DefaultChecks  int       `json:"default_checks" db:"default_checks"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Defaults applied when the settings row does not exist yet
const (
	DefaultScrapRatePerKg = 0.25
	DefaultChecks         = 10
)

// SettingsUpdate carries the admin-updatable fields; nil means leave unchanged
type SettingsUpdate struct {
	ScrapRatePerKg *float64 `json:"scrap_rate_per_kg,omitempty"`
	DefaultChecks  *int     `json:"default_checks,omitempty"`
}
