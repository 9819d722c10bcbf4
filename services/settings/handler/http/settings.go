package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/settings"
)

// SettingsHandler handles the admin business-settings endpoints
type SettingsHandler struct {
	settingsUC settings.SettingsUC
}

// NewSettingsHandler creates a new settings HTTP handler
func NewSettingsHandler(settingsUC settings.SettingsUC) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
	}
}

// GetSettings returns the current business settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Settings.GetSettings")

	s, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "settings retrieved", s)
}

// UpdateSettings applies a partial update to the business settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Settings.UpdateSettings")

	var req models.SettingsUpdate
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	s, err := h.settingsUC.Update(c.Request().Context(), &req)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "settings updated", s)
}

func respondDomainError(c echo.Context, txn *newrelic.Transaction, err error) error {
	status := errs.HTTPStatus(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "settings operation failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.ErrorResponseHandler(c, status, err.Error())
}
