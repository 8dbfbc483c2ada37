package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// worksheetHandler handles HTTP requests for deal worksheets.
type worksheetHandler struct {
	worksheetService portssvc.WorksheetSvcFacade
}

// RegisterWorksheetRoutes registers routes for the worksheet selection cycle.
func RegisterWorksheetRoutes(rg *gin.RouterGroup, worksheetService portssvc.WorksheetSvcFacade) {
	h := &worksheetHandler{worksheetService: worksheetService}

	worksheets := rg.Group("/worksheets")
	{
		worksheets.POST("", h.createWorksheet)
		worksheets.GET("", h.listWorksheets)
		worksheets.GET("/:worksheetID", h.getWorksheet)
		worksheets.PUT("/:worksheetID/inputs", h.updateInputs)
		worksheets.POST("/:worksheetID/select", h.selectScenario)
	}
}

// createWorksheet godoc
// @Summary Open a deal worksheet
// @Description Saves the deal inputs and candidate terms and computes the first scenario set.
// @Tags worksheets
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateWorksheetRequest true "Worksheet"
// @Success 201 {object} dto.WorksheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create worksheet"
// @Router /worksheets [post]
func (h *worksheetHandler) createWorksheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorksheetRequest
	if !bindJSON(c, logger, &req, "CreateWorksheet") {
		return
	}
	logger = logger.With(slog.String("user_id", req.UserID))

	worksheet, err := h.worksheetService.CreateWorksheet(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create worksheet")
		return
	}

	logger.Info("Worksheet created", slog.String("worksheet_id", worksheet.WorksheetID))
	c.JSON(http.StatusCreated, dto.ToWorksheetResponse(worksheet))
}

// getWorksheet godoc
// @Summary Get a worksheet
// @Tags worksheets
// @Produce  json
// @Param   worksheetID path string true "Worksheet ID"
// @Success 200 {object} dto.WorksheetResponse
// @Failure 404 {object} map[string]string "Worksheet not found"
// @Router /worksheets/{worksheetID} [get]
func (h *worksheetHandler) getWorksheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	worksheetID := c.Param("worksheetID")

	worksheet, err := h.worksheetService.GetWorksheetByID(c.Request.Context(), worksheetID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve worksheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorksheetResponse(worksheet))
}

// listWorksheets godoc
// @Summary List worksheets
// @Description Lists worksheets newest first. Pass nextToken from a previous page to continue.
// @Tags worksheets
// @Produce  json
// @Param   limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListWorksheetsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /worksheets [get]
func (h *worksheetHandler) listWorksheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWorksheetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListWorksheets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.worksheetService.ListWorksheets(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list worksheets")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateInputs godoc
// @Summary Update worksheet inputs
// @Description Replaces inputs and candidate terms, regenerates scenarios and clears the selection.
// @Tags worksheets
// @Accept  json
// @Produce  json
// @Param   worksheetID path string true "Worksheet ID"
// @Param   request body dto.UpdateWorksheetInputsRequest true "New inputs"
// @Success 200 {object} dto.WorksheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Worksheet not found"
// @Failure 409 {object} map[string]string "Stale version"
// @Router /worksheets/{worksheetID}/inputs [put]
func (h *worksheetHandler) updateInputs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorksheetInputsRequest
	if !bindJSON(c, logger, &req, "UpdateInputs") {
		return
	}
	worksheetID := c.Param("worksheetID")
	logger = logger.With(slog.String("user_id", req.UserID), slog.String("worksheet_id", worksheetID))

	worksheet, err := h.worksheetService.UpdateInputs(c.Request.Context(), worksheetID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update worksheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorksheetResponse(worksheet))
}

// selectScenario godoc
// @Summary Select a scenario
// @Description Marks one scenario as chosen and records the deal profit.
// @Tags worksheets
// @Accept  json
// @Produce  json
// @Param   worksheetID path string true "Worksheet ID"
// @Param   request body dto.SelectScenarioRequest true "Scenario to select"
// @Success 200 {object} dto.WorksheetResponse
// @Failure 404 {object} map[string]string "Worksheet or scenario not found"
// @Failure 409 {object} map[string]string "No scenarios or stale version"
// @Router /worksheets/{worksheetID}/select [post]
func (h *worksheetHandler) selectScenario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectScenarioRequest
	if !bindJSON(c, logger, &req, "SelectScenario") {
		return
	}
	worksheetID := c.Param("worksheetID")
	logger = logger.With(slog.String("user_id", req.UserID), slog.String("worksheet_id", worksheetID))

	worksheet, err := h.worksheetService.SelectScenario(c.Request.Context(), worksheetID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to select scenario")
		return
	}

	logger.Info("Scenario selected", slog.String("scenario_id", req.ScenarioID))
	c.JSON(http.StatusOK, dto.ToWorksheetResponse(worksheet))
}
