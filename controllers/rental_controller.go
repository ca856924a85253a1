package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motorent-api/models"
	"motorent-api/services"
	"motorent-api/utils"
)

type RentalController struct {
	rentalService *services.RentalService
}

func NewRentalController(rentalService *services.RentalService) *RentalController {
	return &RentalController{rentalService: rentalService}
}

type CreateRentalRequest struct {
	MotorcycleID    string `json:"motorcycle_id" binding:"required"`
	PlanDays        int    `json:"plan_days" binding:"required"`
	StartDate       string `json:"start_date" binding:"required"`
	ExpectedEndDate string `json:"expected_end_date" binding:"required"`
}

type ReturnRentalRequest struct {
	ReturnDate string `json:"return_date" binding:"required"`
}

func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(models.DateFormat, value)
	return t, err == nil
}

func (rc *RentalController) CreateRental(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		utils.SendValidationError(c, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	expectedEndDate, ok := parseDate(req.ExpectedEndDate)
	if !ok {
		utils.SendValidationError(c, "expected_end_date must be formatted as YYYY-MM-DD")
		return
	}

	rental, err := rc.rentalService.CreateRental(userID, req.MotorcycleID, req.PlanDays, startDate, expectedEndDate)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendCreated(c, "Rental created successfully.", rental.ToResponse())
}

// ReturnRental settles the rental; a repeated call is rejected, never
// recomputed.
func (rc *RentalController) ReturnRental(c *gin.Context) {
	userID := c.GetString("user_id")
	rentalID := c.Param("id")

	var req ReturnRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	returnDate, ok := parseDate(req.ReturnDate)
	if !ok {
		utils.SendValidationError(c, "return_date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := rc.rentalService.ReturnRental(rentalID, userID, returnDate)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Rental returned successfully.", result)
}

func (rc *RentalController) GetMyRentals(c *gin.Context) {
	userID := c.GetString("user_id")

	rentals, err := rc.rentalService.ListRentalsByUser(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRentalResponses(rentals))
}

func (rc *RentalController) GetAllRentals(c *gin.Context) {
	rentals, err := rc.rentalService.ListAllRentals()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRentalResponses(rentals))
}

func (rc *RentalController) GetRentalsByMotorcycle(c *gin.Context) {
	rentals, err := rc.rentalService.ListRentalsByMotorcycle(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRentalResponses(rentals))
}

func toRentalResponses(rentals []models.Rental) []models.RentalResponse {
	responses := make([]models.RentalResponse, 0, len(rentals))
	for i := range rentals {
		responses = append(responses, rentals[i].ToResponse())
	}
	return responses
}
