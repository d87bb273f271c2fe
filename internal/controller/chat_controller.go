package controller

import (
	"errors"

	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/internal/util"
	"faculty_hub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	ChatService *service.ChatService
	Hub         *service.ChatHub
}

func NewChatController(chatService *service.ChatService, hub *service.ChatHub) *ChatController {
	return &ChatController{
		ChatService: chatService,
		Hub:         hub,
	}
}

// @Summary Own conversations, most recent first
// @Tags chat
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chat/conversations [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conversations, err := c.ChatService.ListConversations(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, conversations)
}

type sendMessageRequest struct {
	RecipientID uint   `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// @Summary Send a direct message
// @Tags chat
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body sendMessageRequest true "message payload"
// @Success 201 {object} util.Response
// @Router /api/chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req sendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.ChatService.SendMessage(claims.UserID, req.RecipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.BadRequest(ctx, "cannot message yourself")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, msg)
}

// @Summary Upgrade to the chat websocket
// @Tags chat
// @Security ApiKeyAuth
// @Router /api/chat/ws [get]
func (c *ChatController) ServeWS(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.Hub.HandleWS(ctx, claims.UserID); err != nil {
		// The upgrader has already written its own error response.
		logger.Log.Error("WebSocket upgrade failed", zap.Error(err), zap.Uint("userId", claims.UserID))
	}
}
