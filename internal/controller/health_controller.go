package controller

import (
	"context"
	"net/http"
	"time"

	"crypto_compass_backend/internal/repository"
	"crypto_compass_backend/internal/util"
	"crypto_compass_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Store repository.KVStore
}

func NewHealthController(db *gorm.DB, store repository.KVStore) *HealthController {
	return &HealthController{DB: db, Store: store}
}

// @Summary 健康检查
// @Description 检查数据库与键值存储状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		logger.Log.Warn("Database ping failed", zap.Error(err))
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	status, store := "ok", "up"
	if err := c.Store.Ping(pingCtx); err != nil {
		// progress persistence is best effort
		logger.Log.Warn("KV store ping failed", zap.Error(err))
		status, store = "degraded", "down"
	}

	util.Success(ctx, gin.H{
		"status": status,
		"components": gin.H{
			"database": "up",
			"kv":       store,
		},
	})
}
