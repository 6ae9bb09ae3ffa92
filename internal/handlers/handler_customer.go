package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

// customerHandler handles HTTP requests related to customer profiles.
type customerHandler struct {
	errorResponder
	customerService portssvc.CustomerSvcFacade
}

func registerCustomerRoutes(rg *gin.RouterGroup, responder errorResponder, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{errorResponder: responder, customerService: customerService}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		h.respond(c, err, "list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.decodeBody(c, &req, "create customer") {
		return
	}
	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err, "get customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customerHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if !h.decodeBody(c, &req, "update customer") {
		return
	}
	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respond(c, err, "update customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *customerHandler) deleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err, "delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}
