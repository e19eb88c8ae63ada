package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

var statusByCode = map[string]int{
	models.ErrCodeBadRequest:     http.StatusBadRequest,
	models.ErrCodeInvalidVPA:     http.StatusBadRequest,
	models.ErrCodeInvalidCard:    http.StatusBadRequest,
	models.ErrCodeExpiredCard:    http.StatusBadRequest,
	models.ErrCodeAuthentication: http.StatusUnauthorized,
	models.ErrCodeNotFound:       http.StatusNotFound,
	models.ErrCodeServer:         http.StatusInternalServerError,
}

// respondError maps a typed gateway error to its HTTP status. Anything
// untyped is an internal failure: logged with detail, surfaced opaque.
func respondError(c *gin.Context, err error) {
	var ge *models.GatewayError
	if errors.As(err, &ge) {
		status, ok := statusByCode[ge.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": gin.H{
			"code":        ge.Code,
			"description": ge.Description,
		}})
		return
	}

	telemetry.Logger.Error("Internal error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"code":        models.ErrCodeServer,
		"description": "Internal server error",
	}})
}

func respondCode(c *gin.Context, status int, code, description string) {
	c.JSON(status, gin.H{"error": gin.H{
		"code":        code,
		"description": description,
	}})
}
