package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"
	"pushpull/studio-admin/internal/view"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionHandler covers subscription plan CRUD and the joined list
// with its search, filter and sort controls.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// --- DTOs ---

type SubscriptionRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Type           string   `json:"type" binding:"required"`
	ValidForOnsite bool     `json:"validForOnsite"`
	ValidForMobile bool     `json:"validForMobile"`
	Active         bool     `json:"active"`
	Price          float64  `json:"price" binding:"gte=0"`
	Duration       string   `json:"duration"`
	Features       []string `json:"features"`
}

// ListSubscriptions godoc
// @Summary List subscription plans with their linked customers
// @Description Supports ?search= free text, ?active=true|false, and ?sortBy=name|type|date with ?order=asc|desc.
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} view.SubscriptionView
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	query := service.SubscriptionQuery{SearchTerm: c.Query("search")}

	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'active' filter, expected true or false.")
			return
		}
		query.Active = &active
	}

	switch sortBy := view.SortKey(c.Query("sortBy")); sortBy {
	case "":
	case view.SortByName, view.SortByType, view.SortByDate:
		query.Sort = view.SortState{Key: sortBy, Descending: c.Query("order") == "desc"}
	default:
		abortWithError(c, http.StatusBadRequest, "Invalid 'sortBy' value, expected name, type or date.")
		return
	}

	views, err := h.subscriptionService.ListSubscriptionViews(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions.")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetSubscription returns one subscription with its linked customers.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid subscription ID format.")
		return
	}

	sub, err := h.subscriptionService.GetSubscriptionView(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve subscription.")
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CreateSubscription stores a new subscription plan.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), subscriptionFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create subscription.")
		}
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// UpdateSubscription replaces the mutable fields of a subscription plan.
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid subscription ID format.")
		return
	}

	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	sub := subscriptionFromRequest(req)
	sub.ID = id
	if err := h.subscriptionService.UpdateSubscription(c.Request.Context(), sub); err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update subscription.")
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DeleteSubscription removes a subscription plan.
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid subscription ID format.")
		return
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete subscription.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func subscriptionFromRequest(req SubscriptionRequest) *domain.Subscription {
	return &domain.Subscription{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		ValidForOnsite: req.ValidForOnsite,
		ValidForMobile: req.ValidForMobile,
		Active:         req.Active,
		Price:          req.Price,
		Duration:       req.Duration,
		Features:       req.Features,
	}
}
