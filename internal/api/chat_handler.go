package api

import (
	"errors"
	"fmt"
	"net/http"

	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatHandler reads and appends trainer/customer conversations.
type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ListMessages godoc
// @Summary List a trainer/customer conversation in chronological order
// @Tags Chats
// @Produce json
// @Security BearerAuth
// @Param trainerId path string true "Trainer ID"
// @Param customerId path string true "Customer ID"
// @Success 200 {array} domain.ChatMessage
// @Router /chats/{trainerId}/{customerId}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	trainerID, customerID, ok := h.pairFromPath(c)
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(c.Request.Context(), trainerID, customerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve messages.")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage appends a message from the authenticated user to the
// conversation.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	trainerID, customerID, ok := h.pairFromPath(c)
	if !ok {
		return
	}

	senderIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify sender from token.")
		return
	}
	senderID, err := primitive.ObjectIDFromHex(senderIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid sender ID format in token.")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), trainerID, customerID, senderID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusForbidden, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) pairFromPath(c *gin.Context) (trainerID, customerID primitive.ObjectID, ok bool) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("trainerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return trainerID, customerID, false
	}
	customerID, err = primitive.ObjectIDFromHex(c.Param("customerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid customer ID format.")
		return trainerID, customerID, false
	}
	return trainerID, customerID, true
}
