package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llmgate/promptcheck/models"
)

func ProcessGenericBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad request"})
}

func ProcessGenericInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
}

// ProcessDependencyError answers 500 with the provider's own message.
func ProcessDependencyError(c *gin.Context, err error) {
	var depErr *models.DependencyError
	if !errors.As(err, &depErr) {
		ProcessGenericInternalError(c)
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: depErr.Error()})
}
