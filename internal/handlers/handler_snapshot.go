package handlers

import (
	"net/http"

	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/gin-gonic/gin"
)

type snapshotHandler struct {
	snapshotService portssvc.SnapshotSvcFacade
}

// RegisterSnapshotRoutes registers the daily net-worth snapshot routes.
func RegisterSnapshotRoutes(rg *gin.RouterGroup, snapshotService portssvc.SnapshotSvcFacade) {
	h := &snapshotHandler{snapshotService: snapshotService}

	snapshots := rg.Group("/snapshots")
	{
		snapshots.GET("", h.listSnapshots)
		snapshots.POST("", h.recordSnapshot)
		snapshots.GET("/latest", h.getLatestSnapshot)
	}
}

// listSnapshots godoc
// @Summary List net-worth snapshots
// @Tags snapshots
// @Produce  json
// @Param   startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListSnapshotsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /snapshots [get]
func (h *snapshotHandler) listSnapshots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSnapshotsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, logger, "ListSnapshots query", err)
		return
	}

	snapshots, err := h.snapshotService.ListSnapshots(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list snapshots")
		return
	}

	c.JSON(http.StatusOK, dto.ListSnapshotsResponse{Snapshots: dto.ToListSnapshotResponse(snapshots)})
}

// recordSnapshot godoc
// @Summary Record the net-worth snapshot of a day
// @Description Replaces the figures of an existing snapshot for the same date.
// @Tags snapshots
// @Accept  json
// @Produce  json
// @Param   snapshot body dto.RecordSnapshotRequest true "Snapshot figures"
// @Success 200 {object} dto.SnapshotResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /snapshots [post]
func (h *snapshotHandler) recordSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, logger, "RecordSnapshot", err)
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to record snapshot")
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot))
}

// getLatestSnapshot godoc
// @Summary Get the most recent snapshot
// @Description Responds with null when no snapshot was recorded yet.
// @Tags snapshots
// @Produce  json
// @Success 200 {object} dto.SnapshotResponse
// @Router /snapshots/latest [get]
func (h *snapshotHandler) getLatestSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.snapshotService.GetLatestSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve latest snapshot")
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot))
}
