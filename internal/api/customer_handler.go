package api

import (
	"net/http"
	"time"

	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer listing for the dashboard.
type CustomerHandler struct {
	userService service.UserService
}

func NewCustomerHandler(userService service.UserService) *CustomerHandler {
	return &CustomerHandler{userService: userService}
}

// CustomerResponse is a customer row including derived free-trial state.
type CustomerResponse struct {
	UserResponse

	FreeTrialDaysLeft int  `json:"freeTrialDaysLeft"`
	FreeTrialExpired  bool `json:"freeTrialExpired"`
}

// ListCustomers godoc
// @Summary List all customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CustomerResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.userService.ListCustomers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve customers.")
		return
	}

	now := time.Now()
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		summary := service.SummarizeCustomer(customers[i], now)
		responses = append(responses, CustomerResponse{
			UserResponse:      MapUserToResponse(&summary.User),
			FreeTrialDaysLeft: summary.FreeTrialDaysLeft,
			FreeTrialExpired:  summary.FreeTrialExpired,
		})
	}
	c.JSON(http.StatusOK, responses)
}
