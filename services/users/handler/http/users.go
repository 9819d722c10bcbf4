package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/middleware"
	"github.com/scrapline/scrapline/internal/pkg/models"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/users"
)

// UsersHandler handles the public auth endpoints and the caller's own profile
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new user HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{
		userUC: userUC,
	}
}

// Register handles account signup
func (h *UsersHandler) Register(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusCreated, "account created", resp)
}

// Login handles credential verification and token issuance
func (h *UsersHandler) Login(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.Login")

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		// Bad credentials answer 401, not the taxonomy's 400
		if errs.KindOf(err) == errs.InvalidInput {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "login successful", resp)
}

// GetProfile returns the authenticated caller's account
func (h *UsersHandler) GetProfile(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Users.GetProfile")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "profile retrieved", user)
}

func respondDomainError(c echo.Context, txn *newrelic.Transaction, err error) error {
	status := errs.HTTPStatus(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "user operation failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.ErrorResponseHandler(c, status, err.Error())
}
