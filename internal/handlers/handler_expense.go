package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/shopledger/internal/core/domain"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

type expenseHandler struct {
	errorResponder
	expenseService portssvc.ExpenseSvcFacade
}

func registerExpenseRoutes(rg *gin.RouterGroup, responder errorResponder, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{errorResponder: responder, expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), domain.ShopID(c.Query("shopId")))
	if err != nil {
		h.respond(c, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.decodeBody(c, &req, "create expense") {
		return
	}
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.respond(c, err, "create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err, "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}
