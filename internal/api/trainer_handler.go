package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pushpull/studio-admin/internal/service"
	"pushpull/studio-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerHandler covers trainer CRUD, the trainer calendar and profile
// photo upload URLs.
type TrainerHandler struct {
	userService     service.UserService
	calendarService service.CalendarService
	mediaStorage    storage.MediaStorage
}

func NewTrainerHandler(
	userService service.UserService,
	calendarService service.CalendarService,
	mediaStorage storage.MediaStorage,
) *TrainerHandler {
	return &TrainerHandler{
		userService:     userService,
		calendarService: calendarService,
		mediaStorage:    mediaStorage,
	}
}

// --- DTOs ---

type TrainerRequest struct {
	DisplayName    string `json:"displayName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Mobile         string `json:"mobile"`
	Specialization string `json:"specialization" binding:"required"`
	Password       string `json:"password" binding:"required,min=6"`
}

type TrainerUpdateRequest struct {
	DisplayName    string `json:"displayName"`
	Email          string `json:"email" binding:"omitempty,email"`
	Mobile         string `json:"mobile"`
	Specialization string `json:"specialization"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ListTrainers godoc
// @Summary List all trainers
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [get]
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.userService.ListTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve trainers.")
		return
	}

	responses := make([]UserResponse, 0, len(trainers))
	for i := range trainers {
		responses = append(responses, MapUserToResponse(&trainers[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateTrainer godoc
// @Summary Add a new trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainer body TrainerRequest true "Trainer details"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already exists"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.userService.CreateTrainer(c.Request.Context(), service.TrainerInput{
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Specialization: req.Specialization,
		Password:       req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrMissingRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create trainer.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(trainer))
}

// UpdateTrainer applies a partial edit of a trainer's profile.
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	var req TrainerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.userService.UpdateTrainer(c.Request.Context(), id, service.TrainerInput{
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotATrainer):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(trainer))
}

// DeleteTrainer removes a trainer account.
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	if err := h.userService.DeleteTrainer(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotATrainer):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete trainer.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Calendar godoc
// @Summary Trainer month calendar
// @Description Computes the padded week grid of active packages and slot suggestions for one trainer.
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} service.TrainerCalendar
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /trainers/{id}/calendar [get]
func (h *TrainerHandler) Calendar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid year.")
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			abortWithError(c, http.StatusBadRequest, "Invalid month.")
			return
		}
		month = time.Month(m)
	}

	calendar, err := h.calendarService.TrainerMonth(c.Request.Context(), id, year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotATrainer):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to build calendar.")
		}
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// PhotoUploadURL mints a presigned PUT URL for a trainer profile photo.
func (h *TrainerHandler) PhotoUploadURL(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	// Make sure the target actually is a trainer before minting a URL.
	if _, err := h.userService.GetUser(c.Request.Context(), id); err != nil {
		abortWithError(c, http.StatusNotFound, "Trainer not found.")
		return
	}

	objectKey := fmt.Sprintf("profiles/trainers/%s", id.Hex())
	url, err := h.mediaStorage.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		return
	}

	c.JSON(http.StatusOK, PhotoUploadResponse{UploadURL: url, ObjectKey: objectKey})
}
