package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapline/scrapline/internal/pkg/middleware"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/settings"
	httpHandler "github.com/scrapline/scrapline/services/settings/handler/http"
)

// Handler wires the admin settings endpoints
type Handler struct {
	settingsHTTP *httpHandler.SettingsHandler
	cfg          *models.Config
}

// NewHandler creates a new settings handler
func NewHandler(settingsUC settings.SettingsUC, cfg *models.Config) *Handler {
	return &Handler{
		settingsHTTP: httpHandler.NewSettingsHandler(settingsUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers the settings HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	adminGroup := e.Group("/admin/settings", auth, middleware.AdminOnly())
	adminGroup.GET("", h.settingsHTTP.GetSettings)
	adminGroup.PUT("", h.settingsHTTP.UpdateSettings)
}
