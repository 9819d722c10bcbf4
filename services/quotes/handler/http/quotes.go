package http

import (
	stdhttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/middleware"
	"github.com/scrapline/scrapline/internal/pkg/models"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/quotes"
)

// QuotesHandler handles HTTP requests for quote lifecycle operations
type QuotesHandler struct {
	quoteUC quotes.QuoteUC
}

// NewQuotesHandler creates a new quote HTTP handler
func NewQuotesHandler(quoteUC quotes.QuoteUC) *QuotesHandler {
	return &QuotesHandler{
		quoteUC: quoteUC,
	}
}

// RequestQuote handles a user's valuation request for a registration
func (h *QuotesHandler) RequestQuote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Quotes.RequestQuote")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AutoQuoteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.quoteUC.RequestAutoQuote(c.Request().Context(), userID, req.RegNumber)
	if err != nil {
		return respondDomainError(c, txn, err)
	}

	status := stdhttp.StatusOK
	if result.Status == models.StatusNewGenerated {
		status = stdhttp.StatusCreated
	}
	return utils.SuccessResponse(c, status, string(result.Status), result)
}

// ListMyQuotes returns the caller's quote history
func (h *QuotesHandler) ListMyQuotes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Quotes.ListMyQuotes")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.quoteUC.GetUserQuotes(c.Request().Context(), userID)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "quotes retrieved", list)
}

// SubmitManualQuote converts or resubmits a quote for human review
func (h *QuotesHandler) SubmitManualQuote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Quotes.SubmitManualQuote")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	regNumber := c.Param("regNumber")
	if regNumber == "" {
		return utils.BadRequestResponse(c, "Registration number is required")
	}

	var req models.ManualQuoteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.quoteUC.SubmitManualQuote(c.Request().Context(), userID, regNumber, &req)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, string(result.Status), result)
}

// ConfirmCollection accepts a quote and books the pickup in one step
func (h *QuotesHandler) ConfirmCollection(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Quotes.ConfirmCollection")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	quoteID, err := parseQuoteID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.CollectionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.quoteUC.ConfirmCollection(c.Request().Context(), userID, quoteID, &req)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, string(result.Status), result)
}

// RejectQuote records the client turning down a reviewed offer
func (h *QuotesHandler) RejectQuote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Quotes.RejectQuote")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	quoteID, err := parseQuoteID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.RejectQuoteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.quoteUC.RejectQuote(c.Request().Context(), userID, quoteID, req.Reason)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, string(result.Status), result)
}

func parseQuoteID(c echo.Context) (uuid.UUID, error) {
	quoteID, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		return uuid.Nil, errs.New(errs.InvalidInput, "quote ID must be a valid UUID")
	}
	return quoteID, nil
}

// respondDomainError maps the error taxonomy onto HTTP. Conflicts carry the
// status code describing the quote's actual current state so clients can
// branch on it instead of a generic failure.
func respondDomainError(c echo.Context, txn *newrelic.Transaction, err error) error {
	status := errs.HTTPStatus(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "quote operation failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "")
	}
	if stateCode := errs.StateCodeOf(err); stateCode != "" {
		return utils.ConflictResponse(c, status, stateCode, err.Error())
	}
	return utils.ErrorResponseHandler(c, status, err.Error())
}
