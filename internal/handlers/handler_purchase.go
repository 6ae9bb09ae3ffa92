package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// purchaseHandler handles purchases and supplier payments.
type purchaseHandler struct {
	errorResponder
	ledgerService portssvc.LedgerSvcFacade
}

func registerPurchaseRoutes(rg *gin.RouterGroup, responder errorResponder, ledgerService portssvc.LedgerSvcFacade) {
	h := &purchaseHandler{errorResponder: responder, ledgerService: ledgerService}

	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.listPurchases)
		purchases.POST("", h.recordPurchase)
		purchases.GET("/:id", h.getPurchase)
	}

	supplierPayments := rg.Group("/supplier-payments")
	{
		supplierPayments.GET("", h.listSupplierPayments)
		supplierPayments.POST("", h.recordSupplierPayment)
	}
}

func (h *purchaseHandler) recordPurchase(c *gin.Context) {
	var req dto.RecordPurchaseRequest
	if !h.decodeBody(c, &req, "record purchase") {
		return
	}
	purchase, err := h.ledgerService.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "record purchase")
		return
	}
	c.JSON(http.StatusCreated, purchase)
}

func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.ledgerService.GetPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err, "get purchase")
		return
	}
	c.JSON(http.StatusOK, purchase)
}

func (h *purchaseHandler) listPurchases(c *gin.Context) {
	purchases, err := h.ledgerService.ListPurchases(c.Request.Context(), c.Query("supplierId"))
	if err != nil {
		h.respond(c, err, "list purchases")
		return
	}
	c.JSON(http.StatusOK, purchases)
}

func (h *purchaseHandler) recordSupplierPayment(c *gin.Context) {
	var req dto.RecordSupplierPaymentRequest
	if !h.decodeBody(c, &req, "record supplier payment") {
		return
	}
	payment, err := h.ledgerService.RecordSupplierPayment(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "record supplier payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *purchaseHandler) listSupplierPayments(c *gin.Context) {
	payments, err := h.ledgerService.ListSupplierPayments(c.Request.Context(), c.Query("supplierId"))
	if err != nil {
		h.respond(c, err, "list supplier payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
