package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
	"github.com/shopledger/shopledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metricsHandler is mounted at /metrics when it is not nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metricsHandler http.Handler,
) {
	responder := errorResponder{isProduction: cfg.IsProduction}

	r.GET("/health", healthHandler(services.Health))
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("/api")
	registerProductRoutes(api, responder, services.Product, services.Transfer)
	registerCustomerRoutes(api, responder, services.Customer)
	registerSupplierRoutes(api, responder, services.Supplier)
	registerSaleRoutes(api, responder, services.Ledger)
	registerPurchaseRoutes(api, responder, services.Ledger)
	registerExpenseRoutes(api, responder, services.Expense)
	if cfg.EnableReset {
		registerAdminRoutes(api, responder, services.Ledger)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "route not found"})
	})
}

// healthHandler reports liveness and database reachability.
func healthHandler(checker portssvc.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := checker.Ping(ctx); err != nil {
			middleware.GetLoggerFromContext(c).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
