package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motorent-api/apperrors"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendValidationError(c *gin.Context, err string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: err,
		Code:    http.StatusBadRequest,
	})
}

// SendAppError surfaces a typed domain error verbatim; anything else is
// reported as an internal error, never swallowed.
func SendAppError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	c.JSON(appErr.Status, ErrorResponse{
		Error:   appErr.Code,
		Message: appErr.Message,
		Code:    appErr.Status,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}
