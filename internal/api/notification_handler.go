package api

import (
	"fmt"
	"net/http"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler reads per-recipient notification lists and marks
// entries read.
type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type MarkReadRequest struct {
	NotifID string `json:"notifId" binding:"required"`
}

// ListCustomerNotifications godoc
// @Summary List a customer's notifications, newest first
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Customer ID"
// @Success 200 {array} domain.Notification
// @Router /notifications/customers/{customerId} [get]
func (h *NotificationHandler) ListCustomerNotifications(c *gin.Context) {
	h.list(c, domain.RoleCustomer, c.Param("customerId"))
}

// ListTrainerNotifications lists a trainer's notifications, newest first.
func (h *NotificationHandler) ListTrainerNotifications(c *gin.Context) {
	h.list(c, domain.RoleTrainer, c.Param("trainerId"))
}

func (h *NotificationHandler) list(c *gin.Context, audience domain.Role, idHex string) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid recipient ID format.")
		return
	}

	var notifications []domain.Notification
	if audience == domain.RoleCustomer {
		notifications, err = h.notificationService.ListForCustomer(c.Request.Context(), id)
	} else {
		notifications, err = h.notificationService.ListForTrainer(c.Request.Context(), id)
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications.")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkCustomerNotificationRead marks one customer notification read.
func (h *NotificationHandler) MarkCustomerNotificationRead(c *gin.Context) {
	h.markRead(c, domain.RoleCustomer, c.Param("customerId"))
}

// MarkTrainerNotificationRead marks one trainer notification read.
func (h *NotificationHandler) MarkTrainerNotificationRead(c *gin.Context) {
	h.markRead(c, domain.RoleTrainer, c.Param("trainerId"))
}

func (h *NotificationHandler) markRead(c *gin.Context, audience domain.Role, idHex string) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid recipient ID format.")
		return
	}

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), audience, id, req.NotifID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to mark notification read.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}
