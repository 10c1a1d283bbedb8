package controller

import (
	"net/http"

	"github.com/GinYoshida/kanji-quize/internal/game"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	db      *gorm.DB
	rdb     *redis.Client
	manager *game.Manager
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, manager *game.Manager) *HealthController {
	return &HealthController{db: db, rdb: rdb, manager: manager}
}

// HealthCheck godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	status := gin.H{
		"database": "ok",
		"redis":    "ok",
		"sessions": c.manager.Count(),
	}
	healthy := true

	if sqlDB, err := c.db.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "down"
		healthy = false
	}
	if err := c.rdb.Ping(ctx.Request.Context()).Err(); err != nil {
		status["redis"] = "down"
		healthy = false
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "degraded",
			Data:    status,
		})
		return
	}

	util.Success(ctx, status)
}
