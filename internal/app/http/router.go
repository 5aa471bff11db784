package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"maintsvc/internal/app/http/handler"
	"maintsvc/internal/app/http/middleware"
)

func NewRouter(h *handler.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
		middleware.Identity(),
	)

	r.GET("/health", h.Health)

	r.POST("/users/register", h.UserRegister)
	r.POST("/users/setRole", h.UserSetRole)
	r.POST("/users/changePassword", h.UserChangePassword)
	r.POST("/users/login", h.UserLogin)
	r.POST("/users/logout", h.UserLogout)
	r.GET("/users/list", h.UserList)

	r.POST("/assets/create", h.AssetCreate)
	r.POST("/assets/updateCondition", h.AssetUpdateCondition)
	r.POST("/assets/retire", h.AssetRetire)
	r.GET("/assets/get", h.AssetGet)
	r.GET("/assets/list", h.AssetList)

	r.POST("/requests/create", h.RequestCreate)
	r.POST("/requests/assign", h.RequestAssign)
	r.POST("/requests/start", h.RequestStart)
	r.POST("/requests/complete", h.RequestComplete)
	r.POST("/requests/cancel", h.RequestCancel)
	r.GET("/requests/get", h.RequestGet)
	r.GET("/requests/list", h.RequestList)

	r.GET("/stats/technicians", h.StatsTechnicians)
	r.GET("/stats/assets", h.StatsAssets)
	r.GET("/metrics/events", h.MetricsEvents)

	return r
}
