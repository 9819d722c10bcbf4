package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scrapline/scrapline/internal/pkg/models"
	nrpkg "github.com/scrapline/scrapline/internal/pkg/newrelic"
	"github.com/scrapline/scrapline/internal/utils"
	"github.com/scrapline/scrapline/services/quotes"
)

// AdminQuotesHandler handles the admin review and listing surface
type AdminQuotesHandler struct {
	quoteUC quotes.QuoteUC
}

// NewAdminQuotesHandler creates a new admin quote HTTP handler
func NewAdminQuotesHandler(quoteUC quotes.QuoteUC) *AdminQuotesHandler {
	return &AdminQuotesHandler{
		quoteUC: quoteUC,
	}
}

// ListQuotes is the filtered admin listing over the quote collection
func (h *AdminQuotesHandler) ListQuotes(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminQuotes.ListQuotes")

	filter := models.QuoteListFilter{
		Kind:       models.QuoteKind(c.QueryParam("kind")),
		Decision:   models.ClientDecision(c.QueryParam("decision")),
		RegNumber:  c.QueryParam("reg_number"),
		Make:       c.QueryParam("make"),
		Model:      c.QueryParam("model"),
		UserSearch: c.QueryParam("user"),
	}
	if raw := c.QueryParam("reviewed"); raw != "" {
		reviewed, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "reviewed must be a boolean")
		}
		filter.Reviewed = &reviewed
	}
	if raw := c.QueryParam("collected"); raw != "" {
		collected, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "collected must be a boolean")
		}
		filter.Collected = &collected
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return utils.BadRequestResponse(c, "offset must be a non-negative integer")
		}
		filter.Offset = offset
	}

	list, err := h.quoteUC.ListQuotes(c.Request().Context(), filter)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "quotes retrieved", list)
}

// ReviewQuote records an offer price and message against a pending manual quote
func (h *AdminQuotesHandler) ReviewQuote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminQuotes.ReviewQuote")

	quoteID, err := parseQuoteID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.ReviewQuoteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OfferPrice == nil {
		return utils.BadRequestResponse(c, "offer_price is required")
	}

	result, err := h.quoteUC.ReviewManualQuote(c.Request().Context(), quoteID, *req.OfferPrice, req.Message)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, string(result.Status), result)
}

// MarkCollected flips the collected flag on an accepted quote
func (h *AdminQuotesHandler) MarkCollected(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminQuotes.MarkCollected")

	quoteID, err := parseQuoteID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.quoteUC.MarkCollected(c.Request().Context(), quoteID)
	if err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, string(result.Status), result)
}

// DeleteQuote permanently removes a quote record
func (h *AdminQuotesHandler) DeleteQuote(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "AdminQuotes.DeleteQuote")

	quoteID, err := parseQuoteID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.quoteUC.DeleteQuote(c.Request().Context(), quoteID); err != nil {
		return respondDomainError(c, txn, err)
	}
	return utils.SuccessResponse(c, stdhttp.StatusOK, "quote deleted", nil)
}
