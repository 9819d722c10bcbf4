package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/users"
)

// AdminUsersHandler handles the admin account-management endpoints
type AdminUsersHandler struct {
	userUC users.UserUC
}

// NewAdminUsersHandler creates a new admin user HTTP handler
func NewAdminUsersHandler(userUC users.UserUC) *AdminUsersHandler {
	return &AdminUsersHandler{
		userUC: userUC,
	}
}

// ListUsers returns accounts matching the query-string filters
func (h *AdminUsersHandler) ListUsers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminUsers.ListUsers")

	filter := models.UserListFilter{
		NameSearch:  c.QueryParam("name"),
		EmailSearch: c.QueryParam("email"),
		Role:        c.QueryParam("role"),
		SortField:   c.QueryParam("sort"),
		SortAsc:     c.QueryParam("order") == "asc",
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "offset must be an integer")
		}
		filter.Offset = offset
	}

	list, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "users retrieved", list)
}

// GetUser returns a single account
func (h *AdminUsersHandler) GetUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminUsers.GetUser")

	userID, err := parseUserID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "user retrieved", user)
}

// UpdateUser applies a partial update to an account
func (h *AdminUsersHandler) UpdateUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminUsers.UpdateUser")

	userID, err := parseUserID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, &req)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "user updated", user)
}

// RefillChecks restores an account's vehicle-lookup balance to its original grant
func (h *AdminUsersHandler) RefillChecks(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminUsers.RefillChecks")

	userID, err := parseUserID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	user, err := h.userUC.RefillChecks(c.Request().Context(), userID)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "checks refilled", user)
}

// DeleteUser removes an account and its quotes
func (h *AdminUsersHandler) DeleteUser(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminUsers.DeleteUser")

	userID, err := parseUserID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "user deleted", nil)
}

func parseUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return uuid.Nil, errs.New(errs.InvalidInput, "userID must be a valid UUID")
	}
	return userID, nil
}
