package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"maintsvc/internal/app/dto"
	"maintsvc/internal/domain/authz"
)

func (h *Handler) StatsTechnicians(c *gin.Context) {
	if !h.authorize(c, authz.ActionStatsRead, "stats") {
		return
	}

	list, err := h.StatsSvc.GetTechnicianStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.StatsResponse{
		PerTechnician: make([]dto.TechnicianStat, 0, len(list)),
	}
	for _, s := range list {
		resp.PerTechnician = append(resp.PerTechnician, dto.TechnicianStat{
			TechnicianID:  s.TechnicianID,
			AssignedTotal: s.AssignedTotal,
			InProgress:    s.InProgress,
			Completed:     s.Completed,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StatsAssets(c *gin.Context) {
	if !h.authorize(c, authz.ActionStatsRead, "stats") {
		return
	}

	list, err := h.StatsSvc.GetAssetRequestStats(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.StatsResponse{
		PerAsset: make([]dto.AssetRequestStat, 0, len(list)),
	}
	for _, s := range list {
		resp.PerAsset = append(resp.PerAsset, dto.AssetRequestStat{
			AssetID:      s.AssetID,
			OpenRequests: s.OpenRequests,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// MetricsEvents serves the in-memory event counters kept by the metrics
// observer; these reset with the process, unlike /stats which is DB-backed.
func (h *Handler) MetricsEvents(c *gin.Context) {
	if !h.authorize(c, authz.ActionMetricsRead, "metrics") {
		return
	}

	c.JSON(http.StatusOK, h.Metrics.Snapshot())
}
