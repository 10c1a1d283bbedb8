package controller

import (
	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	service *service.LearningLogService
}

func NewLogController(s *service.LearningLogService) *LogController {
	return &LogController{service: s}
}

type CreateLogRequest struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
}

// CreateLog godoc
// @Summary Save one finished quiz session's outcome
// @Tags logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateLogRequest true "session outcome"
// @Success 201 {object} util.Response{data=model.LearningLog}
// @Failure 400 {object} util.Response
// @Router /api/logs [post]
func (c *LogController) CreateLog(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.service.CreateLog(user.UserID, req.Score, req.TotalQuestions)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, log)
}

// ListLogs godoc
// @Summary List the caller's learning logs in completion order
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LearningLog}
// @Router /api/logs [get]
func (c *LogController) ListLogs(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	logs, err := c.service.ListLogsByUser(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, logs)
}
