package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply. Details carries optional
// structured context such as the missing fields of an incomplete wizard step.
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorHandler catches panics from downstream handlers and converts them
// into a structured 500 instead of a dropped connection.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and logs it.
func JSONError(c *gin.Context, status int, message string, details interface{}) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.Any("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
