package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/middleware"
)

type adminHandler struct {
	errorResponder
	ledgerService portssvc.LedgerWriterSvc
}

// registerAdminRoutes is only called when reset is enabled in configuration.
func registerAdminRoutes(rg *gin.RouterGroup, responder errorResponder, ledgerService portssvc.LedgerWriterSvc) {
	h := &adminHandler{errorResponder: responder, ledgerService: ledgerService}
	rg.POST("/admin/reset", h.resetAll)
}

func (h *adminHandler) resetAll(c *gin.Context) {
	if err := h.ledgerService.ResetAll(c.Request.Context()); err != nil {
		h.respond(c, err, "reset data")
		return
	}
	middleware.GetLoggerFromContext(c).Warn("All business data reset via API")
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
