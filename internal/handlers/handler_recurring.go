package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type recurringHandler struct {
	recurringService portssvc.RecurringRuleSvcFacade
	reporter         portssvc.RecurringPassReporter
}

// RegisterRecurringRoutes registers recurring rule routes and the manual run trigger.
// reporter may be nil.
func RegisterRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringRuleSvcFacade, reporter portssvc.RecurringPassReporter) {
	h := &recurringHandler{recurringService: recurringService, reporter: reporter}

	rules := rg.Group("/recurring")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.POST("/run-due", h.runDue)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

// createRule godoc
// @Summary Create a recurring rule
// @Description Creates an income, transfer or dca rule. nextRun defaults to the first occurrence on or after today.
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   rule body dto.CreateRecurringRuleRequest true "Rule details"
// @Success 201 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown participant"
// @Failure 500 {object} map[string]string "Failed to create recurring rule"
// @Router /recurring [post]
func (h *recurringHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "CreateRecurringRule", err)
		return
	}

	logger.Info("Received request to create recurring rule",
		slog.String("action", req.Action),
		slog.String("frequency", req.Frequency))

	rule, err := h.recurringService.CreateRecurringRule(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create recurring rule")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringRuleResponse(rule))
}

// listRules godoc
// @Summary List recurring rules
// @Description Lists rules newest first. accountId matches any of the account references.
// @Tags recurring
// @Produce  json
// @Param   kind query string false "Rule kind"
// @Param   accountId query int false "Account ID"
// @Param   investmentId query int false "Investment ID"
// @Success 200 {object} dto.ListRecurringRulesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list recurring rules"
// @Router /recurring [get]
func (h *recurringHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecurringRulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, "ListRecurringRules query", err)
		return
	}

	rules, err := h.recurringService.ListRecurringRules(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list recurring rules")
		return
	}

	c.JSON(http.StatusOK, dto.ListRecurringRulesResponse{Rules: dto.ToListRecurringRuleResponse(rules)})
}

// getRule godoc
// @Summary Get a recurring rule
// @Tags recurring
// @Produce  json
// @Param   id path int true "Rule ID"
// @Success 200 {object} dto.RecurringRuleResponse
// @Failure 404 {object} map[string]string "Recurring rule not found"
// @Router /recurring/{id} [get]
func (h *recurringHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	rule, err := h.recurringService.GetRecurringRuleByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve recurring rule")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a recurring rule
// @Description Changing the schedule without nextRun restarts the rule from today.
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   id path int true "Rule ID"
// @Param   rule body dto.UpdateRecurringRuleRequest true "Fields to update"
// @Success 200 {object} dto.RecurringRuleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Recurring rule not found"
// @Router /recurring/{id} [put]
func (h *recurringHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateRecurringRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "UpdateRecurringRule", err)
		return
	}

	rule, err := h.recurringService.UpdateRecurringRule(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update recurring rule")
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringRuleResponse(rule))
}

// deleteRule godoc
// @Summary Delete a recurring rule
// @Tags recurring
// @Param   id path int true "Rule ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Recurring rule not found"
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, logger, "id")
	if !ok {
		return
	}

	if err := h.recurringService.DeleteRecurringRule(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete recurring rule")
		return
	}

	c.Status(http.StatusNoContent)
}

// runDue godoc
// @Summary Run due recurring rules
// @Description Applies every due occurrence of every enabled rule up to today. Rules whose occurrence was declined are listed in stuck.
// @Tags recurring
// @Produce  json
// @Success 200 {object} dto.RunDueResponse
// @Failure 500 {object} map[string]string "Recurring pass failed"
// @Router /recurring/run-due [post]
func (h *recurringHandler) runDue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.recurringService.RunDue(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Recurring pass failed")
		return
	}

	logger.Info("Recurring pass completed",
		slog.Int("processed", result.Processed),
		slog.Int("executed", result.Executed),
		slog.Int("stuck", len(result.Stuck)))
	if h.reporter != nil {
		h.reporter.ReportRecurringPass("http", result)
	}
	c.JSON(http.StatusOK, dto.ToRunDueResponse(result))
}
