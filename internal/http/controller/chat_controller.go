package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/chat"
	"github.com/veloura/storefront/internal/metrics"
	"github.com/veloura/storefront/internal/prefs"
)

// ChatController handles HTTP requests for the FAQ chat widget.
type ChatController struct {
	responder *chat.Responder
	store     *prefs.Store
}

// NewChatController creates a new ChatController.
func NewChatController(responder *chat.Responder, store *prefs.Store) *ChatController {
	return &ChatController{responder: responder, store: store}
}

// MessageRequest represents the request body for a chat message.
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// MessageResponse represents the chat reply. The UI waits typing_delay_ms
// before showing the text to simulate typing.
type MessageResponse struct {
	Intent        string `json:"intent"`
	Reply         string `json:"reply"`
	TypingDelayMS int64  `json:"typing_delay_ms"`
}

// PostMessage handles the HTTP POST request for a chat message.
func (cc *ChatController) PostMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := cc.responder.Reply(req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer message"})
		return
	}
	metrics.ChatMessages.Inc()

	c.JSON(http.StatusOK, MessageResponse{
		Intent:        string(reply.Intent),
		Reply:         reply.Text,
		TypingDelayMS: reply.TypingDelay.Milliseconds(),
	})
}

// GetLog handles the HTTP GET request for the bounded conversation log.
func (cc *ChatController) GetLog(c *gin.Context) {
	log, err := cc.store.ChatLog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read chat log"})
		return
	}
	if log == nil {
		log = []prefs.LogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"log": log})
}
