package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akylbek/payment-system/payment-gateway/internal/config"
	"github.com/akylbek/payment-system/payment-gateway/internal/gateway"
	"github.com/akylbek/payment-system/payment-gateway/internal/handlers"
	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/telemetry"
)

func NewRouter(store interfaces.Store, merchants interfaces.MerchantStore, engine *gateway.Engine, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-gateway"})
	})

	orderHandler := handlers.NewOrderHandler(store)
	paymentHandler := handlers.NewPaymentHandler(store, engine, cfg.AllowAmountOverride)
	dashboardHandler := handlers.NewDashboardHandler(store)
	merchantHandler := handlers.NewMerchantHandler(merchants)

	// Public checkout routes
	r.GET("/api/v1/test/merchant", merchantHandler.GetTestMerchant)
	r.GET("/api/v1/orders/:order_id/public", orderHandler.GetOrderPublic)
	r.POST("/api/v1/payments/public", paymentHandler.CreatePaymentPublic)
	r.GET("/api/v1/payments/:payment_id/public", paymentHandler.GetPaymentPublic)

	// Merchant routes
	auth := r.Group("/api/v1", handlers.AuthMiddleware(merchants))
	auth.POST("/orders", orderHandler.CreateOrder)
	auth.GET("/orders/:order_id", orderHandler.GetOrder)
	auth.GET("/dashboard/payments", dashboardHandler.ListPayments)
	auth.GET("/dashboard/stats", dashboardHandler.GetStats)
	auth.POST("/payments", paymentHandler.CreatePayment)
	auth.GET("/payments/:payment_id", paymentHandler.GetPayment)

	return r
}
