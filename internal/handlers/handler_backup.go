package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// RegisterBackupRoutes registers the export, import and clear routes.
func RegisterBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := &backupHandler{backupService: backupService}

	rg.GET("/export", h.exportData)
	rg.POST("/import", h.importData)
	rg.POST("/clear", h.clearData)
}

// exportData godoc
// @Summary Export all data
// @Description Accounts, transactions, investments, settings, snapshots and price history. Recurring rules are not exported.
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.BackupPayload
// @Failure 500 {object} map[string]string "Failed to export data"
// @Router /export [get]
func (h *backupHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backup, err := h.backupService.ExportData(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to export data")
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupPayload(backup))
}

// importData godoc
// @Summary Replace all data with a backup
// @Description Recurring rules are kept.
// @Tags backup
// @Accept  json
// @Produce  json
// @Param   backup body dto.BackupPayload true "Exported data"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} map[string]string "Invalid backup"
// @Failure 500 {object} map[string]string "Failed to import data"
// @Router /import [post]
func (h *backupHandler) importData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var payload dto.BackupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindFailed(c, logger, "ImportData", err)
		return
	}

	logger.Info("Received request to import data",
		slog.Int("version", payload.Version), slog.Int("accounts", len(payload.Accounts)))

	if err := h.backupService.ImportData(c.Request.Context(), payload.ToDomain()); err != nil {
		respondError(c, logger, err, "Failed to import data")
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// clearData godoc
// @Summary Delete all data except recurring rules
// @Tags backup
// @Produce  json
// @Success 200 {object} dto.OKResponse
// @Failure 500 {object} map[string]string "Failed to clear data"
// @Router /clear [post]
func (h *backupHandler) clearData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Received request to clear all data")

	if err := h.backupService.ClearData(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to clear data")
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
