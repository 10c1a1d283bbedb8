package controller

import (
	"path"
	"strconv"

	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/internal/util"
	"github.com/GinYoshida/kanji-quize/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizController struct {
	service *service.QuizService
	storage *service.StorageService
}

func NewQuizController(s *service.QuizService, storage *service.StorageService) *QuizController {
	return &QuizController{service: s, storage: storage}
}

// ListQuestions godoc
// @Summary List quiz questions visible to the caller
// @Description Parents see every question; players see global ones plus their own
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Router /api/quizzes [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.service.ListQuestions(user.UserID, user.IsOwner())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// ListActiveQuestions godoc
// @Summary List active quiz questions for gameplay
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Router /api/quizzes/active [get]
func (c *QuizController) ListActiveQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.service.ListActiveQuestions(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// GetQuestion godoc
// @Summary Get one quiz question
// @Description A question outside the caller's visibility is reported as missing
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	question, err := c.service.GetQuestion(uint(id), user.UserID, user.IsOwner())
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// CreateQuestion godoc
// @Summary Create a quiz question
// @Description Options must contain exactly 3 entries including the correct kanji
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuestionInput true "question payload"
// @Success 201 {object} util.Response{data=model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.CreateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.service.CreateQuestion(user.UserID, input)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Partially update a quiz question
// @Description Omitted fields keep their values; an explicit null clears a hint
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.UpdateQuestionInput true "fields to change"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [patch]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var input service.UpdateQuestionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.service.UpdateQuestion(uint(id), input)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Delete a quiz question and its stored image
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	question, err := c.service.GetQuestion(uint(id), user.UserID, user.IsOwner())
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	if err := c.service.DeleteQuestion(uint(id)); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	if question.ImagePath != "" {
		// best effort, the question row is already gone
		if err := c.storage.Delete(ctx.Request.Context(), path.Base(question.ImagePath)); err != nil {
			logger.Log.Warn("quiz image cleanup failed",
				zap.String("imagePath", question.ImagePath), zap.Error(err))
		}
	}

	util.Success(ctx, gin.H{"success": true})
}
