package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/authz"
	"maintsvc/internal/domain/request"
	"maintsvc/internal/domain/stats"
	"maintsvc/internal/domain/user"
	"maintsvc/internal/observer"
)

type Handler struct {
	UserSvc    user.Service
	AssetSvc   asset.Service
	RequestSvc request.Service
	StatsSvc   stats.Service
	Metrics    *observer.Metrics
	Policy     *authz.Policy
	Log        *zap.Logger
}

func New(
	userSvc user.Service,
	assetSvc asset.Service,
	requestSvc request.Service,
	statsSvc stats.Service,
	metrics *observer.Metrics,
	policy *authz.Policy,
	log *zap.Logger,
) *Handler {
	return &Handler{
		UserSvc:    userSvc,
		AssetSvc:   assetSvc,
		RequestSvc: requestSvc,
		StatsSvc:   statsSvc,
		Metrics:    metrics,
		Policy:     policy,
		Log:        log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
