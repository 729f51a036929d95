package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	dirErrors "github.com/wekeepgrowing/customer-directory/internal/domain/errors"
	"github.com/wekeepgrowing/customer-directory/internal/usecase"
)

type CustomerHandler struct {
	customerService *usecase.CustomerService
	directory       directory.CustomerDirectory
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *usecase.CustomerService, dir directory.CustomerDirectory, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		directory:       dir,
		logger:          logger,
	}
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var input usecase.CreateCustomerInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "a valid email is required",
			"details": err.Error(),
		})
	}

	resp := h.customerService.CreateCustomer(c.Request().Context(), &input)
	return c.JSON(resp.StatusCode, resp)
}

// DeleteCustomerByEmail handles DELETE /api/v1/customers?email=
func (h *CustomerHandler) DeleteCustomerByEmail(c echo.Context) error {
	email := c.QueryParam("email")

	resp := h.customerService.DeleteCustomerByEmail(c.Request().Context(), email)
	return c.JSON(resp.StatusCode, resp)
}

// GetCustomer handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID := c.Param("id")

	customer, err := h.directory.GetCustomerByID(c.Request().Context(), customerID)
	if err != nil {
		if dirErrors.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such customer"})
		}
		h.logger.Error("failed to get customer",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	var params directory.ListCustomersParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination parameters"})
	}

	page, err := h.directory.ListCustomers(c.Request().Context(), &params)
	if err != nil {
		h.logger.Error("failed to list customers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, page)
}

// UpdateCustomer handles PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerID := c.Param("id")

	var params directory.UpdateCustomerParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	customer, err := h.directory.UpdateCustomer(c.Request().Context(), customerID, &params)
	if err != nil {
		if dirErrors.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such customer"})
		}
		h.logger.Error("failed to update customer",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, customer)
}
