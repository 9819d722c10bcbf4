package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scrapline/scrapline/internal/pkg/database"
	"github.com/scrapline/scrapline/internal/pkg/middleware"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/quotes"
	httpHandler "github.com/scrapline/scrapline/services/quotes/handler/http"
)

// Handler combines the user-facing and admin HTTP handlers for the quotes service
type Handler struct {
	quotesHTTP *httpHandler.QuotesHandler
	adminHTTP  *httpHandler.AdminQuotesHandler
	cfg        *models.Config
	redis      *database.RedisClient
}

// NewHandler creates a new combined handler
func NewHandler(
	quoteUC quotes.QuoteUC,
	cfg *models.Config,
	redis *database.RedisClient,
) *Handler {
	return &Handler{
		quotesHTTP: httpHandler.NewQuotesHandler(quoteUC),
		adminHTTP:  httpHandler.NewAdminQuotesHandler(quoteUC),
		cfg:        cfg,
		redis:      redis,
	}
}

// RegisterRoutes registers all quote HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	quotesGroup := e.Group("/quotes", auth)
	quotesGroup.POST("", h.quotesHTTP.RequestQuote,
		middleware.UserRateLimiter("quotes", h.cfg.Quotes.RateLimitPerMin, time.Minute, h.redis.Client))
	quotesGroup.GET("", h.quotesHTTP.ListMyQuotes)
	quotesGroup.POST("/:regNumber/manual", h.quotesHTTP.SubmitManualQuote)
	quotesGroup.POST("/:quoteID/collection", h.quotesHTTP.ConfirmCollection)
	quotesGroup.POST("/:quoteID/reject", h.quotesHTTP.RejectQuote)

	adminGroup := e.Group("/admin/quotes", auth, middleware.AdminOnly())
	adminGroup.GET("", h.adminHTTP.ListQuotes)
	adminGroup.POST("/:quoteID/review", h.adminHTTP.ReviewQuote)
	adminGroup.POST("/:quoteID/collected", h.adminHTTP.MarkCollected)
	adminGroup.DELETE("/:quoteID", h.adminHTTP.DeleteQuote)
}
