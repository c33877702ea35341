package handlers

import (
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

// RegisterSettingRoutes registers the key/value settings routes.
func RegisterSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade) {
	h := &settingHandler{settingService: settingService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.putSetting)
		settings.DELETE("/:key", h.deleteSetting)
	}
}

// listSettings godoc
// @Summary List all settings
// @Description Returns every setting as one JSON object keyed by setting key.
// @Tags settings
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Failed to list settings"
// @Router /settings [get]
func (h *settingHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingService.ListSettings(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsMap(settings))
}

// getSetting godoc
// @Summary Get a setting
// @Description Unknown keys return a null value.
// @Tags settings
// @Produce  json
// @Param   key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Router /settings/{key} [get]
func (h *settingHandler) getSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	setting, err := h.settingService.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve setting")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// putSetting godoc
// @Summary Store a setting
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   setting body dto.PutSettingRequest true "Any JSON value"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /settings/{key} [put]
func (h *settingHandler) putSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "PutSetting", err)
		return
	}

	setting, err := h.settingService.PutSetting(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to store setting")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// deleteSetting godoc
// @Summary Delete a setting
// @Tags settings
// @Param   key path string true "Setting key"
// @Success 204 "No Content"
// @Router /settings/{key} [delete]
func (h *settingHandler) deleteSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.settingService.DeleteSetting(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, logger, err, "Failed to delete setting")
		return
	}

	c.Status(http.StatusNoContent)
}
