package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
)

type MerchantHandler struct {
	merchants interfaces.MerchantStore
}

func NewMerchantHandler(merchants interfaces.MerchantStore) *MerchantHandler {
	return &MerchantHandler{merchants: merchants}
}

// GetTestMerchant seeds (or returns) the demo merchant so the dashboard
// and integration tests have credentials to work with.
func (h *MerchantHandler) GetTestMerchant(c *gin.Context) {
	m, err := h.merchants.EnsureTestMerchant(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"merchant_id": m.ID,
		"api_key":     m.APIKey,
		"api_secret":  m.APISecret,
	})
}
