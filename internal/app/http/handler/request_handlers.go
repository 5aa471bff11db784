package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"maintsvc/internal/app/dto"
	"maintsvc/internal/domain/authz"
	"maintsvc/internal/domain/request"
)

func toRequestDTO(q request.Request) dto.MaintenanceRequest {
	return dto.MaintenanceRequest{
		RequestID:    q.ID,
		Title:        q.Title,
		Description:  q.Description,
		RequestType:  string(q.Type),
		Status:       string(q.Status),
		SubmitterID:  q.SubmitterID,
		TechnicianID: q.TechnicianID,
		AssetID:      q.AssetID,
	}
}

func (h *Handler) RequestCreate(c *gin.Context) {
	if !h.authorize(c, authz.ActionRequestCreate, "requests") {
		return
	}

	var body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		RequestType string  `json:"request_type"`
		AssetID     *string `json:"asset_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Title == "" {
		h.badRequest(c, "title is required")
		return
	}
	if body.RequestType == "" {
		body.RequestType = string(request.TypeRepair)
	}

	sub := subjectFrom(c)
	q, err := h.RequestSvc.Create(c.Request.Context(), body.Title, body.Description,
		request.RequestType(body.RequestType), sub.UserID, body.AssetID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": toRequestDTO(q)})
}

func (h *Handler) RequestAssign(c *gin.Context) {
	if !h.authorize(c, authz.ActionRequestAssign, "requests") {
		return
	}

	var body struct {
		RequestID    string `json:"request_id"`
		TechnicianID string `json:"technician_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.RequestID == "" || body.TechnicianID == "" {
		h.badRequest(c, "request_id and technician_id are required")
		return
	}

	q, err := h.RequestSvc.Assign(c.Request.Context(), body.RequestID, body.TechnicianID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": toRequestDTO(q)})
}

func (h *Handler) RequestStart(c *gin.Context) {
	if !h.authorize(c, authz.ActionRequestWork, "requests") {
		return
	}
	h.requestTransition(c, h.RequestSvc.Start)
}

func (h *Handler) RequestComplete(c *gin.Context) {
	if !h.authorize(c, authz.ActionRequestWork, "requests") {
		return
	}
	h.requestTransition(c, h.RequestSvc.Complete)
}

func (h *Handler) RequestCancel(c *gin.Context) {
	if !h.authorize(c, authz.ActionRequestCancel, "requests") {
		return
	}
	h.requestTransition(c, h.RequestSvc.Cancel)
}

func (h *Handler) requestTransition(c *gin.Context, op func(ctx context.Context, requestID string) (request.Request, error)) {
	var body struct {
		RequestID string `json:"request_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.RequestID == "" {
		h.badRequest(c, "request_id is required")
		return
	}

	q, err := op(c.Request.Context(), body.RequestID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": toRequestDTO(q)})
}

func (h *Handler) RequestGet(c *gin.Context) {
	requestID := c.Query("request_id")
	if requestID == "" {
		h.badRequest(c, "request_id is required")
		return
	}

	q, err := h.RequestSvc.GetByID(c.Request.Context(), requestID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": toRequestDTO(q)})
}

func (h *Handler) RequestList(c *gin.Context) {
	var status *request.Status
	if s := c.Query("status"); s != "" {
		st := request.Status(s)
		status = &st
	}

	list, err := h.RequestSvc.List(c.Request.Context(), status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	requests := make([]dto.MaintenanceRequest, 0, len(list))
	for _, q := range list {
		requests = append(requests, toRequestDTO(q))
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
