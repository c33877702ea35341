package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

// RegisterInvestmentRoutes registers routes related to investment holdings.
func RegisterInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &investmentHandler{investmentService: investmentService}

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
		investments.GET("/:id", h.getInvestment)
		investments.PUT("/:id", h.updateInvestment)
		investments.DELETE("/:id", h.deleteInvestment)
	}
}

// createInvestment godoc
// @Summary Create an investment holding
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   investment body dto.CreateInvestmentRequest true "Holding details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create investment"
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "CreateInvestment", err)
		return
	}

	logger.Info("Received request to create investment", slog.String("name", req.Name))

	inv, err := h.investmentService.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create investment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(inv))
}

// listInvestments godoc
// @Summary List investment holdings
// @Tags investments
// @Produce  json
// @Param   type query string false "Holding type, e.g. fund or stock"
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 500 {object} map[string]string "Failed to list investments"
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvestmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, "ListInvestments query", err)
		return
	}

	invs, err := h.investmentService.ListInvestments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list investments")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvestmentsResponse{Investments: dto.ToListInvestmentResponse(invs)})
}

// getInvestment godoc
// @Summary Get an investment holding
// @Tags investments
// @Produce  json
// @Param   id path int true "Investment ID"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 404 {object} map[string]string "Investment not found"
// @Router /investments/{id} [get]
func (h *investmentHandler) getInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	inv, err := h.investmentService.GetInvestmentByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve investment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// updateInvestment godoc
// @Summary Update an investment holding
// @Tags investments
// @Accept  json
// @Produce  json
// @Param   id path int true "Investment ID"
// @Param   investment body dto.UpdateInvestmentRequest true "Fields to update"
// @Success 200 {object} dto.InvestmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Investment not found"
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "UpdateInvestment", err)
		return
	}

	inv, err := h.investmentService.UpdateInvestment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update investment")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestmentResponse(inv))
}

// deleteInvestment godoc
// @Summary Delete an investment holding
// @Tags investments
// @Param   id path int true "Investment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Investment not found"
// @Router /investments/{id} [delete]
func (h *investmentHandler) deleteInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.investmentService.DeleteInvestment(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete investment")
		return
	}

	c.Status(http.StatusNoContent)
}
