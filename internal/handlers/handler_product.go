package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// productHandler handles HTTP requests related to products and stock transfers.
type productHandler struct {
	errorResponder
	productService  portssvc.ProductSvcFacade
	transferService portssvc.TransferSvc
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, responder errorResponder, productService portssvc.ProductSvcFacade, transferService portssvc.TransferSvc) {
	h := &productHandler{
		errorResponder:  responder,
		productService:  productService,
		transferService: transferService,
	}

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
	rg.POST("/transfers", h.transferStock)
}

func (h *productHandler) listProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), domain.ShopID(c.Query("shopId")))
	if err != nil {
		h.respond(c, err, "list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.decodeBody(c, &req, "create product") {
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err, "get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.decodeBody(c, &req, "update product") {
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respond(c, err, "update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err, "delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *productHandler) transferStock(c *gin.Context) {
	var req dto.TransferRequest
	if !h.decodeBody(c, &req, "transfer stock") {
		return
	}
	result, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "transfer stock")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Stock transferred",
		slog.String("source_product_id", req.SourceProductID),
		slog.Bool("destination_created", result.DestinationCreated))
	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}
