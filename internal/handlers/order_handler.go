package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

type OrderHandler struct {
	store interfaces.Store
}

func NewOrderHandler(store interfaces.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCode(c, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondCode(c, http.StatusBadRequest, models.ErrCodeBadRequest, "Amount must be a positive minor-unit integer")
		return
	}
	if !isCurrencyCode(req.Currency) {
		respondCode(c, http.StatusBadRequest, models.ErrCodeBadRequest, "Currency must be a 3-letter ISO 4217 code")
		return
	}

	order := &models.Order{
		ID:         "order_" + uuid.NewString(),
		MerchantID: c.GetString(merchantIDKey),
		Amount:     req.Amount,
		Currency:   req.Currency,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.CreateOrder(c.Request.Context(), order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Request.Context(), c.Param("order_id"), c.GetString(merchantIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		respondCode(c, http.StatusNotFound, models.ErrCodeNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderPublic serves the checkout page; it exposes only what the
// payer needs to see.
func (h *OrderHandler) GetOrderPublic(c *gin.Context) {
	order, err := h.store.GetOrderByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		respondCode(c, http.StatusNotFound, models.ErrCodeNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         order.ID,
		"amount":     order.Amount,
		"currency":   order.Currency,
		"created_at": order.CreatedAt,
	})
}
