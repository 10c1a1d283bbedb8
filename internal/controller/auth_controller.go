package controller

import (
	"errors"
	"net/http"

	"github.com/GinYoshida/kanji-quize/internal/service"
	"github.com/GinYoshida/kanji-quize/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{service: s}
}

type PlayerSessionRequest struct {
	UserID string `json:"userId"`
}

// PlayerSession godoc
// @Summary Issue a player token
// @Description Without a userId a fresh anonymous identity is created
// @Tags auth
// @Accept json
// @Produce json
// @Param body body PlayerSessionRequest false "existing identity"
// @Success 200 {object} util.Response
// @Router /api/auth/session [post]
func (c *AuthController) PlayerSession(ctx *gin.Context) {
	var req PlayerSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, userID, err := c.service.IssuePlayerToken(req.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token, "userId": userID})
}

type PasscodeRequest struct {
	Passcode string `json:"passcode" binding:"required"`
	UserID   string `json:"userId"`
}

// VerifyPasscode godoc
// @Summary Exchange the parent passcode for an owner token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body PasscodeRequest true "passcode"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /api/auth/passcode [post]
func (c *AuthController) VerifyPasscode(ctx *gin.Context) {
	var req PasscodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, userID, err := c.service.VerifyPasscode(ctx.Request.Context(), req.Passcode, ctx.ClientIP(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrWrongPasscode):
			util.Unauthorized(ctx)
		case errors.Is(err, util.ErrTooManyAttempts):
			util.Error(ctx, http.StatusTooManyRequests, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token, "userId": userID})
}
