package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	dirErrors "github.com/wekeepgrowing/customer-directory/internal/domain/errors"
)

type PaymentMethodHandler struct {
	directory directory.CustomerDirectory
	logger    *zap.Logger
}

func NewPaymentMethodHandler(dir directory.CustomerDirectory, logger *zap.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		directory: dir,
		logger:    logger,
	}
}

type attachPaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

// AttachPaymentMethod handles POST /api/v1/customers/:id/payment-methods
func (h *PaymentMethodHandler) AttachPaymentMethod(c echo.Context) error {
	customerID := c.Param("id")

	var req attachPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method_id is required"})
	}

	method, err := h.directory.AttachPaymentMethod(c.Request().Context(), req.PaymentMethodID, customerID)
	if err != nil {
		if dirErrors.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such customer or payment method"})
		}
		h.logger.Error("failed to attach payment method",
			zap.String("customer_id", customerID),
			zap.String("payment_method_id", req.PaymentMethodID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, method)
}

// ListPaymentMethods handles GET /api/v1/customers/:id/payment-methods
func (h *PaymentMethodHandler) ListPaymentMethods(c echo.Context) error {
	customerID := c.Param("id")
	methodType := c.QueryParam("type")

	methods, err := h.directory.ListPaymentMethods(c.Request().Context(), customerID, methodType)
	if err != nil {
		h.logger.Error("failed to list payment methods",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"payment_methods": methods})
}
