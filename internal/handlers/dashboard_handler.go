package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/payment-gateway/internal/gateway"
	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
)

type DashboardHandler struct {
	store interfaces.Store
}

func NewDashboardHandler(store interfaces.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

func (h *DashboardHandler) ListPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	payments, err := h.store.ListPayments(c.Request.Context(), c.GetString(merchantIDKey), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]map[string]any, 0, len(payments))
	for _, p := range payments {
		items = append(items, gateway.Project(p, true))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.store.PaymentStats(c.Request.Context(), c.GetString(merchantIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
