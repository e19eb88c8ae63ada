package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

const merchantIDKey = "merchant_id"

// AuthMiddleware authenticates merchants by the X-Api-Key/X-Api-Secret
// header pair and stores the merchant id on the request context.
func AuthMiddleware(merchants interfaces.MerchantStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		apiSecret := c.GetHeader("X-Api-Secret")

		if apiKey == "" || apiSecret == "" {
			respondCode(c, http.StatusUnauthorized, models.ErrCodeAuthentication, "Invalid API credentials")
			c.Abort()
			return
		}

		m, err := merchants.GetMerchantByCredentials(c.Request.Context(), apiKey, apiSecret)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if m == nil {
			respondCode(c, http.StatusUnauthorized, models.ErrCodeAuthentication, "Invalid API credentials")
			c.Abort()
			return
		}

		c.Set(merchantIDKey, m.ID)
		c.Next()
	}
}
