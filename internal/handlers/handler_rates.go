package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler serves the lender, fee and F&I tables.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// RegisterRateRoutes registers routes for rate and fee lookups.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := &rateHandler{rateService: rateService}

	rates := rg.Group("/rates")
	{
		rates.GET("/lenders", h.listLenders)
		rates.POST("/lenders/:lenderID/quote", h.quoteLender)
		rates.GET("/fees", h.getFeeSchedule)
		rates.GET("/tax/:state", h.getTaxRate)
		rates.GET("/fi-products", h.listFiProducts)
	}
}

// listLenders godoc
// @Summary List lender rate sheets
// @Tags rates
// @Produce  json
// @Success 200 {array} domain.Lender
// @Router /rates/lenders [get]
func (h *rateHandler) listLenders(c *gin.Context) {
	c.JSON(http.StatusOK, h.rateService.ListLenders(c.Request.Context()))
}

// quoteLender godoc
// @Summary Quote a structure with a lender
// @Description Prices the structure at the lender's buy rate for the customer's credit tier and checks term and LTV limits.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   lenderID path string true "Lender ID"
// @Param   request body dto.LenderQuoteRequest true "Structure to price"
// @Success 200 {object} domain.LenderQuote
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Lender not found"
// @Router /rates/lenders/{lenderID}/quote [post]
func (h *rateHandler) quoteLender(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LenderQuoteRequest
	if !bindJSON(c, logger, &req, "QuoteLender") {
		return
	}

	quote, err := h.rateService.QuoteLender(c.Request.Context(), c.Param("lenderID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to quote lender")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// getFeeSchedule godoc
// @Summary Get the dealership fee schedule
// @Tags rates
// @Produce  json
// @Success 200 {object} domain.FeeSchedule
// @Router /rates/fees [get]
func (h *rateHandler) getFeeSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.rateService.GetFeeSchedule(c.Request.Context()))
}

// getTaxRate godoc
// @Summary Get the sales tax rate for a state
// @Tags rates
// @Produce  json
// @Param   state path string true "Two-letter state code" MinLength(2) MaxLength(2)
// @Success 200 {object} dto.TaxRateResponse
// @Failure 400 {object} map[string]string "Invalid state code"
// @Router /rates/tax/{state} [get]
func (h *rateHandler) getTaxRate(c *gin.Context) {
	state := strings.ToUpper(strings.TrimSpace(c.Param("state")))
	if len(state) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State code must be 2 letters"})
		return
	}

	c.JSON(http.StatusOK, dto.TaxRateResponse{
		State:        state,
		SalesTaxRate: h.rateService.TaxRateFor(c.Request.Context(), state),
	})
}

// listFiProducts godoc
// @Summary List the F&I product catalog
// @Tags rates
// @Produce  json
// @Success 200 {array} domain.FiProduct
// @Router /rates/fi-products [get]
func (h *rateHandler) listFiProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.rateService.ListFiProducts(c.Request.Context()))
}
