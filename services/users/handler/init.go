package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/scrapline/scrapline/internal/pkg/middleware"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/users"
	httpHandler "github.com/scrapline/scrapline/services/users/handler/http"
)

// Handler combines the public auth endpoints and the admin account endpoints
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	adminHTTP *httpHandler.AdminUsersHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		adminHTTP: httpHandler.NewAdminUsersHandler(userUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all user HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	usersGroup := e.Group("/users")
	usersGroup.POST("/register", h.usersHTTP.Register)
	usersGroup.POST("/login", h.usersHTTP.Login)
	usersGroup.GET("/me", h.usersHTTP.GetProfile, auth)

	adminGroup := e.Group("/admin/users", auth, middleware.AdminOnly())
	adminGroup.GET("", h.adminHTTP.ListUsers)
	adminGroup.GET("/:userID", h.adminHTTP.GetUser)
	adminGroup.PUT("/:userID", h.adminHTTP.UpdateUser)
	adminGroup.POST("/:userID/refill-checks", h.adminHTTP.RefillChecks)
	adminGroup.DELETE("/:userID", h.adminHTTP.DeleteUser)
}
