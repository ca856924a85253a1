package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorent-api/services"
	"motorent-api/utils"
)

type MotorcycleController struct {
	motorcycleService *services.MotorcycleService
}

func NewMotorcycleController(motorcycleService *services.MotorcycleService) *MotorcycleController {
	return &MotorcycleController{motorcycleService: motorcycleService}
}

type CreateMotorcycleRequest struct {
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year" binding:"required"`
	VIN   string `json:"vin" binding:"required"`
}

type UpdateVINRequest struct {
	VIN string `json:"vin"`
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	motorcycle, err := mc.motorcycleService.RegisterMotorcycle(req.Model, req.Year, req.VIN)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendCreated(c, "Motorcycle created successfully.", motorcycle)
}

func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	motorcycles, err := mc.motorcycleService.ListMotorcycles()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) GetAvailableMotorcycles(c *gin.Context) {
	motorcycles, err := mc.motorcycleService.ListAvailableMotorcycles()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) GetMotorcycleByVIN(c *gin.Context) {
	motorcycle, err := mc.motorcycleService.GetByVIN(c.Param("vin"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) UpdateMotorcycleVIN(c *gin.Context) {
	var req UpdateVINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	motorcycle, err := mc.motorcycleService.UpdateVIN(c.Param("id"), req.VIN)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Motorcycle VIN updated successfully.", motorcycle)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	if err := mc.motorcycleService.DeleteMotorcycle(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendSuccess(c, "Motorcycle deleted successfully.", nil)
}
