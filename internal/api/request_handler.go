package api

import (
	"errors"
	"fmt"
	"net/http"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestHandler covers the customer request queue and the scheduling
// suggestions hanging off it.
type RequestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// --- DTOs ---

type RequestStatusUpdate struct {
	Status domain.RequestStatus `json:"status" binding:"required"`
}

type SuggestionRequest struct {
	Message string `json:"message" binding:"required"`
	Slot    string `json:"slot" binding:"required,oneof=morning afternoon evening"`
	Trainer string `json:"trainer" binding:"required"`
}

type MoreSuggestionsUpdate struct {
	Status string `json:"status" binding:"required,oneof=requested sent dismissed"`
}

// ListRequests godoc
// @Summary List customer requests, newest first
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} view.RequestView
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	views, err := h.requestService.ListRequestViews(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve requests.")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetRequest returns the full request detail: request, customer and the
// customer's suggestion history.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request ID format.")
		return
	}

	detail, err := h.requestService.GetRequestDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve request.")
		}
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateRequestStatus moves a request through its lifecycle.
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request ID format.")
		return
	}

	var req RequestStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	switch req.Status {
	case domain.RequestPending, domain.RequestAccepted, domain.RequestRejected, domain.RequestResolved:
	default:
		abortWithError(c, http.StatusBadRequest, "Invalid request status.")
		return
	}

	if err := h.requestService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update request status.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// AddSuggestion records a scheduling proposal for the request's customer.
func (h *RequestHandler) AddSuggestion(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request ID format.")
		return
	}

	var req SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	suggestion, err := h.requestService.AddSuggestion(c.Request.Context(), id, domain.Suggestion{
		Message: req.Message,
		Slot:    req.Slot,
		Trainer: req.Trainer,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMissingRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add suggestion.")
		}
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}

// UpdateMoreSuggestions sets the customer's "more suggestions" marker.
func (h *RequestHandler) UpdateMoreSuggestions(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request ID format.")
		return
	}

	var req MoreSuggestionsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.requestService.SetMoreSuggestionsStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update suggestion status.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
