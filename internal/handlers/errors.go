package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/dto"
	"github.com/shopledger/shopledger/internal/middleware"
)

// errorResponder writes service errors as JSON. Outside production 500 responses carry the cause.
type errorResponder struct {
	isProduction bool
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConstraint), errors.Is(err, apperrors.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the caller-facing text of a 4xx error.
func publicMessage(err error) string {
	itemErr, isItem := apperrors.AsItemError(err)
	if isItem {
		err = itemErr.Err
	}
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	if isItem {
		msg = fmt.Sprintf("item %d: %s", itemErr.Index, msg)
	}
	return msg
}

func (r errorResponder) respond(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromContext(c)
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		body := dto.ErrorResponse{Error: "Internal server error"}
		if !r.isProduction {
			body.Detail = err.Error()
		}
		c.JSON(status, body)
		return
	}

	logger.Warn("Request rejected: "+action, slog.Int("status", status), slog.String("error", err.Error()))
	body := dto.ErrorResponse{Error: publicMessage(err)}
	if itemErr, ok := apperrors.AsItemError(err); ok {
		body.Item = &dto.ItemProblem{Index: itemErr.Index, ProductID: itemErr.ProductID}
	}
	c.JSON(status, body)
}

// decodeBody normalizes the JSON body into req and validates it.
func (r errorResponder) decodeBody(c *gin.Context, req any, action string) bool {
	if err := dto.Decode(c.Request.Body, req); err != nil {
		r.respond(c, err, action)
		return false
	}
	return true
}
