package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

// RespondWithError sends a standardized JSON error response.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	log.Printf("Error response: HTTPStatus=%d, AppErrorCode=%s, Message=%s", httpStatus, appErrorCode, message)

	c.JSON(httpStatus, models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	})
}

// RespondWithSuccess sends a JSON success response, or only the status when
// data is nil.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}
