package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"maintsvc/internal/app/dto"
	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/authz"
)

func toAssetDTO(a asset.Asset) dto.Asset {
	out := dto.Asset{
		AssetID:   a.ID,
		Name:      a.Name,
		Category:  a.Category,
		Condition: string(a.Condition),
		Status:    string(a.Status),
	}
	if !a.PurchaseCost.IsZero() {
		out.PurchaseCost = a.PurchaseCost.String()
	}
	return out
}

func (h *Handler) AssetCreate(c *gin.Context) {
	if !h.authorize(c, authz.ActionAssetCreate, "assets") {
		return
	}

	var body struct {
		Name         string `json:"name"`
		Category     string `json:"category"`
		Condition    string `json:"condition"`
		PurchaseCost string `json:"purchase_cost"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Name == "" {
		h.badRequest(c, "name is required")
		return
	}
	if body.Condition == "" {
		body.Condition = string(asset.ConditionGood)
	}

	cost := decimal.Zero
	if body.PurchaseCost != "" {
		var err error
		cost, err = decimal.NewFromString(body.PurchaseCost)
		if err != nil {
			h.badRequest(c, "purchase_cost must be a decimal number")
			return
		}
	}

	a, err := h.AssetSvc.Create(c.Request.Context(), body.Name, body.Category, asset.Condition(body.Condition), cost)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": toAssetDTO(a)})
}

func (h *Handler) AssetUpdateCondition(c *gin.Context) {
	if !h.authorize(c, authz.ActionAssetUpdate, "assets") {
		return
	}

	var body struct {
		AssetID   string `json:"asset_id"`
		Condition string `json:"condition"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.AssetID == "" || body.Condition == "" {
		h.badRequest(c, "asset_id and condition are required")
		return
	}

	a, err := h.AssetSvc.UpdateCondition(c.Request.Context(), body.AssetID, asset.Condition(body.Condition))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": toAssetDTO(a)})
}

func (h *Handler) AssetRetire(c *gin.Context) {
	if !h.authorize(c, authz.ActionAssetRetire, "assets") {
		return
	}

	var body struct {
		AssetID string `json:"asset_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.AssetID == "" {
		h.badRequest(c, "asset_id is required")
		return
	}

	a, err := h.AssetSvc.Retire(c.Request.Context(), body.AssetID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": toAssetDTO(a)})
}

func (h *Handler) AssetGet(c *gin.Context) {
	assetID := c.Query("asset_id")
	if assetID == "" {
		h.badRequest(c, "asset_id is required")
		return
	}

	a, err := h.AssetSvc.GetByID(c.Request.Context(), assetID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": toAssetDTO(a)})
}

func (h *Handler) AssetList(c *gin.Context) {
	list, err := h.AssetSvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	assets := make([]dto.Asset, 0, len(list))
	for _, a := range list {
		assets = append(assets, toAssetDTO(a))
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}
