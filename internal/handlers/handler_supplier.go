package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// supplierHandler handles HTTP requests related to supplier profiles.
type supplierHandler struct {
	errorResponder
	supplierService portssvc.SupplierSvcFacade
}

func registerSupplierRoutes(rg *gin.RouterGroup, responder errorResponder, supplierService portssvc.SupplierSvcFacade) {
	h := &supplierHandler{errorResponder: responder, supplierService: supplierService}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.POST("", h.createSupplier)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

func (h *supplierHandler) listSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		h.respond(c, err, "list suppliers")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *supplierHandler) createSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !h.decodeBody(c, &req, "create supplier") {
		return
	}
	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "create supplier")
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *supplierHandler) getSupplier(c *gin.Context) {
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err, "get supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *supplierHandler) updateSupplier(c *gin.Context) {
	var req dto.UpdateSupplierRequest
	if !h.decodeBody(c, &req, "update supplier") {
		return
	}
	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respond(c, err, "update supplier")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err, "delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
