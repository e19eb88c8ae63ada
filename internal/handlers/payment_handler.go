package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/payment-gateway/internal/gateway"
	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

type PaymentHandler struct {
	store  interfaces.Store
	engine *gateway.Engine

	// allowOverride applies to the public checkout path only; the
	// authenticated path always charges the order amount.
	allowOverride bool
}

func NewPaymentHandler(store interfaces.Store, engine *gateway.Engine, allowOverride bool) *PaymentHandler {
	return &PaymentHandler{
		store:         store,
		engine:        engine,
		allowOverride: allowOverride,
	}
}

// CreatePayment is the authenticated submit: validate, build, create,
// process, project. All rejections are terminal for the attempt.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var attempt models.PaymentAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		respondCode(c, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	order, err := h.store.GetOrder(ctx, attempt.OrderID, c.GetString(merchantIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		respondCode(c, http.StatusNotFound, models.ErrCodeNotFound, "Order not found")
		return
	}

	h.submit(c, order, &attempt, false)
}

// CreatePaymentPublic is the unauthenticated checkout submit. The order
// is looked up without merchant scoping and the amount override policy
// applies.
func (h *PaymentHandler) CreatePaymentPublic(c *gin.Context) {
	var attempt models.PaymentAttempt
	if err := c.ShouldBindJSON(&attempt); err != nil {
		respondCode(c, http.StatusBadRequest, models.ErrCodeBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	order, err := h.store.GetOrderByID(ctx, attempt.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		respondCode(c, http.StatusNotFound, models.ErrCodeNotFound, "Order not found")
		return
	}

	h.submit(c, order, &attempt, h.allowOverride)
}

func (h *PaymentHandler) submit(c *gin.Context, order *models.Order, attempt *models.PaymentAttempt, allowOverride bool) {
	np, err := gateway.Build(order, attempt, allowOverride)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := h.engine.Create(ctx, np)
	if err != nil {
		respondError(c, err)
		return
	}

	processed, err := h.engine.Process(ctx, created.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gateway.Project(processed, false))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.engine.Get(c.Request.Context(), c.Param("payment_id"), c.GetString(merchantIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gateway.Project(p, true))
}

func (h *PaymentHandler) GetPaymentPublic(c *gin.Context) {
	p, err := h.store.GetPaymentByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if p == nil {
		respondCode(c, http.StatusNotFound, models.ErrCodeNotFound, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, gateway.Project(p, true))
}
