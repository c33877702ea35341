package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type priceHistoryHandler struct {
	priceHistoryService portssvc.PriceHistorySvcFacade
}

// RegisterPriceHistoryRoutes registers routes for recorded investment prices.
func RegisterPriceHistoryRoutes(rg *gin.RouterGroup, priceHistoryService portssvc.PriceHistorySvcFacade) {
	h := &priceHistoryHandler{priceHistoryService: priceHistoryService}

	prices := rg.Group("/price-history")
	{
		prices.GET("", h.listPriceHistory)
		prices.POST("", h.recordPrice)
		prices.GET("/by-date", h.getPriceByDate)
		prices.PUT("/:id", h.updatePriceRecord)
		prices.DELETE("/by-investment/:id", h.deletePriceHistoryByInvestment)
	}
}

// listPriceHistory godoc
// @Summary List recorded prices
// @Tags price-history
// @Produce  json
// @Param   investmentId query int false "Only this investment"
// @Param   startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListPriceHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list price history"
// @Router /price-history [get]
func (h *priceHistoryHandler) listPriceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPriceHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, "ListPriceHistory query", err)
		return
	}

	records, err := h.priceHistoryService.ListPriceHistory(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list price history")
		return
	}

	c.JSON(http.StatusOK, dto.ListPriceHistoryResponse{PriceHistory: dto.ToListPriceRecordResponse(records)})
}

// recordPrice godoc
// @Summary Record the price of an investment on a date
// @Description Replaces the price already recorded for that investment and date.
// @Tags price-history
// @Accept  json
// @Produce  json
// @Param   price body dto.RecordPriceRequest true "Price details"
// @Success 200 {object} dto.PriceRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record price"
// @Router /price-history [post]
func (h *priceHistoryHandler) recordPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "RecordPrice", err)
		return
	}

	record, err := h.priceHistoryService.RecordPrice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record price")
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRecordResponse(record))
}

// getPriceByDate godoc
// @Summary Get the price of an investment on a date
// @Description Responds with null when no price was recorded that day.
// @Tags price-history
// @Produce  json
// @Param   investmentId query int true "Investment ID"
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.PriceRecordResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /price-history/by-date [get]
func (h *priceHistoryHandler) getPriceByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PriceByDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, "PriceByDate query", err)
		return
	}

	record, err := h.priceHistoryService.GetPriceByDate(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve price")
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRecordResponse(record))
}

// updatePriceRecord godoc
// @Summary Replace a recorded price
// @Tags price-history
// @Accept  json
// @Produce  json
// @Param   id path int true "Price record ID"
// @Param   price body dto.UpdatePriceRecordRequest true "Price details"
// @Success 200 {object} dto.PriceRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Price record not found"
// @Failure 409 {object} map[string]string "Another record exists for that date"
// @Router /price-history/{id} [put]
func (h *priceHistoryHandler) updatePriceRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdatePriceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "UpdatePriceRecord", err)
		return
	}

	record, err := h.priceHistoryService.UpdatePriceRecord(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update price record")
		return
	}

	c.JSON(http.StatusOK, dto.ToPriceRecordResponse(record))
}

// deletePriceHistoryByInvestment godoc
// @Summary Delete every recorded price of an investment
// @Tags price-history
// @Produce  json
// @Param   id path int true "Investment ID"
// @Success 200 {object} dto.DeletePriceHistoryResponse
// @Failure 500 {object} map[string]string "Failed to delete price history"
// @Router /price-history/by-investment/{id} [delete]
func (h *priceHistoryHandler) deletePriceHistoryByInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	deleted, err := h.priceHistoryService.DeletePriceHistoryByInvestment(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete price history")
		return
	}

	logger.Info("Price history deleted", slog.Int64("investment_id", id), slog.Int64("deleted", deleted))
	c.JSON(http.StatusOK, dto.DeletePriceHistoryResponse{Deleted: deleted})
}
