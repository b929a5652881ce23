package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/internal/service"
)

type ChatController struct {
	ChatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// SendMessage handles POST /chat/messages
func (cc *ChatController) SendMessage(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	reply, err := cc.ChatService.Send(uid, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// GetMessages handles GET /chat/messages
func (cc *ChatController) GetMessages(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	messages, err := cc.ChatService.History(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// ClearMessages handles DELETE /chat/messages
func (cc *ChatController) ClearMessages(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := cc.ChatService.Clear(uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reply handles GET /chat/reply?q=
func (cc *ChatController) Reply(c *gin.Context) {
	reply, err := cc.ChatService.Preview(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
