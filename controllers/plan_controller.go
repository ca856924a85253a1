package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motorent-api/apperrors"
	"motorent-api/repositories"
	"motorent-api/utils"
)

// PlanController exposes the read-only rental plan catalog.
type PlanController struct {
	plans *repositories.RentalPlanRepository
}

func NewPlanController(plans *repositories.RentalPlanRepository) *PlanController {
	return &PlanController{plans: plans}
}

func (pc *PlanController) GetPlans(c *gin.Context) {
	plans, err := pc.plans.ListAll()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (pc *PlanController) GetPlanByDays(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		utils.SendValidationError(c, "days must be an integer")
		return
	}

	plan, err := pc.plans.GetByDays(days)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	if plan == nil {
		utils.SendAppError(c, apperrors.ErrRentalPlanNotFound)
		return
	}

	c.JSON(http.StatusOK, plan)
}
