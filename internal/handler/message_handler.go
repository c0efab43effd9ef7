package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/service"
)

// MessageHandler handles private message API endpoints
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}
	req.SenderID = middleware.GetUserID(c)

	msg, err := h.messageService.Send(&req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, msg)
}

// Inbox handles GET /api/v1/messages/inbox
func (h *MessageHandler) Inbox(c *gin.Context) {
	messages, err := h.messageService.GetInbox(middleware.GetUserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, messages, nil)
}

// Sent handles GET /api/v1/messages/sent
func (h *MessageHandler) Sent(c *gin.Context) {
	messages, err := h.messageService.GetSent(middleware.GetUserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, messages, nil)
}

// MarkAsRead handles PATCH /api/v1/messages/:id/read
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid message id")
		return
	}

	msg, err := h.messageService.MarkAsRead(id, middleware.GetUserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, msg, nil)
}

// Delete handles DELETE /api/v1/messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid message id")
		return
	}

	if err := h.messageService.Delete(id, middleware.GetUserID(c)); err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
