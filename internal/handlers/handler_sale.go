package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// saleHandler handles sales, returns and customer payments.
type saleHandler struct {
	errorResponder
	ledgerService portssvc.LedgerSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, responder errorResponder, ledgerService portssvc.LedgerSvcFacade) {
	h := &saleHandler{errorResponder: responder, ledgerService: ledgerService}

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.recordSale)
		sales.GET("/:id", h.getSale)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.recordPayment)
	}
}

func (h *saleHandler) recordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !h.decodeBody(c, &req, "record sale") {
		return
	}
	sale, err := h.ledgerService.RecordSale(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "record sale")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Sale recorded", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, sale)
}

func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.ledgerService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err, "get sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *saleHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.respond(c, apperrors.NewAppError(apperrors.ErrValidation, "invalid query parameters", err), "list sales")
		return
	}
	page, err := h.ledgerService.ListSales(c.Request.Context(), domain.SaleFilter{
		CustomerID: params.CustomerID,
		ShopID:     domain.ShopID(params.ShopID),
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	})
	if err != nil {
		h.respond(c, err, "list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesResponse(page))
}

func (h *saleHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !h.decodeBody(c, &req, "record payment") {
		return
	}
	payment, err := h.ledgerService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *saleHandler) listPayments(c *gin.Context) {
	payments, err := h.ledgerService.ListPayments(c.Request.Context(), c.Query("customerId"))
	if err != nil {
		h.respond(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
