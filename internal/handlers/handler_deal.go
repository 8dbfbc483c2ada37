package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dealHandler handles HTTP requests for the deal calculation engine.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(ds portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{
		dealService: ds,
	}
}

// RegisterDealRoutes registers routes for deal structuring and profit analysis.
func RegisterDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := newDealHandler(dealService)

	deals := rg.Group("/deals")
	{
		deals.POST("/structure", h.buildStructure)
		deals.POST("/scenarios", h.generateScenarios)
		deals.POST("/payment", h.quotePayment)
		deals.POST("/profit", h.analyzeProfit)
		deals.POST("/gross", h.calculateGross)
	}
}

// buildStructure godoc
// @Summary Structure a deal
// @Description Computes taxable base, sales tax, F&I totals and the finance amount. When salesTaxRate is omitted the state tax table is used.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   inputs body dto.DealInputsRequest true "Deal inputs"
// @Success 200 {object} domain.DealStructure
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to structure deal"
// @Router /deals/structure [post]
func (h *dealHandler) buildStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DealInputsRequest
	if !bindJSON(c, logger, &req, "BuildStructure") {
		return
	}

	structure, err := h.dealService.BuildStructure(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to structure deal")
		return
	}

	c.JSON(http.StatusOK, structure)
}

// generateScenarios godoc
// @Summary Generate payment scenarios
// @Description Computes one scenario per candidate finance term followed by one per lease term, in request order.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   request body dto.GenerateScenariosRequest true "Deal inputs and candidate terms"
// @Success 200 {object} dto.ScenariosResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate term"
// @Failure 500 {object} map[string]string "Failed to generate scenarios"
// @Router /deals/scenarios [post]
func (h *dealHandler) generateScenarios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateScenariosRequest
	if !bindJSON(c, logger, &req, "GenerateScenarios") {
		return
	}

	resp, err := h.dealService.GenerateScenarios(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate scenarios")
		return
	}

	logger.Info("Scenarios generated", slog.Int("count", len(resp.Scenarios)), slog.Bool("cached", resp.Cached))
	c.JSON(http.StatusOK, resp)
}

// quotePayment godoc
// @Summary Quote an amortized payment
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   request body dto.PaymentRequest true "Principal, APR and term"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /deals/payment [post]
func (h *dealHandler) quotePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaymentRequest
	if !bindJSON(c, logger, &req, "QuotePayment") {
		return
	}

	resp, err := h.dealService.QuotePayment(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to quote payment")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// analyzeProfit godoc
// @Summary Analyze deal profit
// @Description Splits profit into front-end, back-end, holdback and incentives with the margin on sale price.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   request body dto.ProfitRequest true "Finalized deal"
// @Success 200 {object} domain.ProfitBreakdown
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /deals/profit [post]
func (h *dealHandler) analyzeProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProfitRequest
	if !bindJSON(c, logger, &req, "AnalyzeProfit") {
		return
	}

	profit, err := h.dealService.AnalyzeProfit(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to analyze profit")
		return
	}

	c.JSON(http.StatusOK, profit)
}

// calculateGross godoc
// @Summary Calculate deal gross and recap
// @Description Computes front-end gross, finance reserve, product gross, pack and net gross together with the accounting recap entries.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   request body dto.GrossRequest true "Closed deal"
// @Success 200 {object} dto.GrossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /deals/gross [post]
func (h *dealHandler) calculateGross(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GrossRequest
	if !bindJSON(c, logger, &req, "CalculateGross") {
		return
	}

	resp, err := h.dealService.CalculateGross(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate deal gross")
		return
	}

	c.JSON(http.StatusOK, resp)
}
