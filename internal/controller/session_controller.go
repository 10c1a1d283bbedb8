package controller

import (
	"github.com/GinYoshida/kanji-quize/internal/game"
	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/internal/util"
	"github.com/GinYoshida/kanji-quize/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionController hosts server-side quiz play-throughs: it fetches the
// caller's active questions, drives them through the game engine, and on
// finish hands the outcome to the log service.
type SessionController struct {
	manager      *game.Manager
	quizzes      *service.QuizService
	logs         *service.LearningLogService
	defaultCount int
}

func NewSessionController(m *game.Manager, quizzes *service.QuizService, logs *service.LearningLogService, defaultCount int) *SessionController {
	return &SessionController{manager: m, quizzes: quizzes, logs: logs, defaultCount: defaultCount}
}

type StartSessionRequest struct {
	// Count limits how many questions are played; 0 means all.
	Count *int `json:"count"`
}

// StartSession godoc
// @Summary Start a quiz session over the caller's active questions
// @Description A failed question fetch degrades to an empty session rather than an error
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body StartSessionRequest false "session options"
// @Success 201 {object} util.Response{data=game.Snapshot}
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		util.BadRequest(ctx, err.Error())
		return
	}
	count := c.defaultCount
	if req.Count != nil && *req.Count >= 0 {
		count = *req.Count
	}

	questions, err := c.quizzes.ListActiveQuestions(user.UserID)
	if err != nil {
		// proceed with nothing to show rather than failing the session
		logger.Log.Warn("question fetch failed, starting empty session", zap.Error(err))
		questions = nil
	}
	if count > 0 && count < len(questions) {
		questions = questions[:count]
	}

	session := c.manager.Create(user.UserID, questions)
	util.Created(ctx, session.Snapshot())
}

// GetSession godoc
// @Summary Get the current state of a session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response{data=game.Snapshot}
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.manager.Get(ctx.Param("id"), user.UserID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session.Snapshot())
}

type SubmitAnswerRequest struct {
	Kanji string `json:"kanji" binding:"required"`
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Only valid while the session is playing; other states are a no-op
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Param body body SubmitAnswerRequest true "selected kanji"
// @Success 200 {object} util.Response{data=game.AnswerResult}
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id}/answer [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.manager.Get(ctx.Param("id"), user.UserID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	result, ok := session.SubmitAnswer(req.Kanji)
	if !ok {
		util.Success(ctx, gin.H{"accepted": false, "state": session.Snapshot().State})
		return
	}

	util.Success(ctx, result)
}

// FinishSession godoc
// @Summary Finish a completed session and save its learning log
// @Description On log failure the session stays complete so the caller can retry
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Success 201 {object} util.Response{data=model.LearningLog}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id}/finish [post]
func (c *SessionController) FinishSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.manager.Get(ctx.Param("id"), user.UserID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	summary, err := session.Finish()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.logs.CreateLog(user.UserID, summary.Score, summary.TotalQuestions)
	if err != nil {
		// session stays complete, the client may retry
		util.HandleServiceError(ctx, err)
		return
	}

	c.manager.Remove(session.ID)
	util.Created(ctx, log)
}

// AbandonSession godoc
// @Summary Abandon a session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{id} [delete]
func (c *SessionController) AbandonSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.manager.Abandon(ctx.Param("id"), user.UserID); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}
