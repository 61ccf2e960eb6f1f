package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageHandler covers package creation and the denormalized package
// list.
type PackageHandler struct {
	packageService service.PackageService
}

func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// --- DTOs ---

type PlanRequest struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type CreatePackageRequest struct {
	CustomerID            string        `json:"customerId" binding:"required"`
	Title                 string        `json:"title" binding:"required"`
	CustomerGoal          string        `json:"customerGoal" binding:"required"`
	Height                int           `json:"height" binding:"required,gt=0"`
	Weight                int           `json:"weight" binding:"required,gt=0"`
	Plans                 []PlanRequest `json:"plans"`
	IsFreeTrial           bool          `json:"isFreeTrial"`
	SubscriptionID        string        `json:"subscriptionId"`
	SubscriptionStartDate *time.Time    `json:"subscriptionStartDate"`
	SubscriptionEndDate   *time.Time    `json:"subscriptionEndDate"`
}

// CreatePackage godoc
// @Summary Create a training package for a customer
// @Description Stores the package, marks the customer's free trial when requested, notifies the customer and seeds the first chat message.
// @Tags Packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param package body CreatePackageRequest true "Package details"
// @Success 201 {object} domain.Package
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Customer or subscription not found"
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainerIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	trainerID, err := primitive.ObjectIDFromHex(trainerIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in token.")
		return
	}

	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid customer ID format.")
		return
	}

	input := service.PackageInput{
		CustomerID:            customerID,
		TrainerID:             trainerID,
		Title:                 req.Title,
		CustomerGoal:          req.CustomerGoal,
		Height:                req.Height,
		Weight:                req.Weight,
		IsFreeTrial:           req.IsFreeTrial,
		SubscriptionStartDate: req.SubscriptionStartDate,
		SubscriptionEndDate:   req.SubscriptionEndDate,
	}

	for _, plan := range req.Plans {
		input.Plans = append(input.Plans, domain.Plan{
			Title:       plan.Title,
			Type:        plan.Type,
			Description: plan.Description,
			Date:        plan.Date,
		})
	}

	if req.SubscriptionID != "" {
		subID, err := primitive.ObjectIDFromHex(req.SubscriptionID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid subscription ID format.")
			return
		}
		input.SubscriptionID = &subID
	}

	pkg, err := h.packageService.CreatePackage(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCustomerNotFound), errors.Is(err, service.ErrTrainerNotFound), errors.Is(err, service.ErrSubscriptionInvalid):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create package.")
		}
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// ListPackages returns the joined package list, optionally narrowed by a
// free-text search term.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	views, err := h.packageService.ListPackageViews(c.Request.Context(), c.Query("search"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve packages.")
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPackage returns a single package by id.
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid package ID format.")
		return
	}

	pkg, err := h.packageService.GetPackage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve package.")
		}
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid package ID format.")
		return
	}

	if err := h.packageService.DeletePackage(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete package.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
