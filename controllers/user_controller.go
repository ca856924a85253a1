package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorent-api/services"
	"motorent-api/utils"
)

type UserController struct {
	userService  *services.UserService
	photoService *services.CNHPhotoService
}

func NewUserController(userService *services.UserService, photoService *services.CNHPhotoService) *UserController {
	return &UserController{
		userService:  userService,
		photoService: photoService,
	}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.userService.GetProfile(userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadCNHPhoto stores the caller's driver license photo and remembers the
// object name on the profile.
func (uc *UserController) UploadCNHPhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	if uc.photoService == nil {
		utils.SendError(c, http.StatusServiceUnavailable, "CNH photo storage is not available")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.SendValidationError(c, "A file upload is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	objectName, err := uc.photoService.Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if err := uc.userService.AttachCNHPhoto(userID, objectName); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save CNH photo reference")
		return
	}

	utils.SendSuccess(c, "CNH photo uploaded successfully.", gin.H{"object_name": objectName})
}
