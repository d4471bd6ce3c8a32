package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/customer-management/internal/api/metrics"
	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// CustomerHandler handles customer CRUD. All operations run behind the auth
// and role guards; per-record visibility is decided in the service.
type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create adds a customer record. No type-conflict check applies on create.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customerService.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:      req.Name,
		Addresses: req.Addresses,
		Type:      domain.CustomerType(req.Type),
	})
	if err != nil {
		return err
	}

	metrics.CustomersCreatedTotal.WithLabelValues(req.Type).Inc()
	return c.JSON(http.StatusCreated, customer)
}

// List returns the customers visible to the caller, optionally narrowed by
// an explicit ?type= filter.
//
// @Summary      List customers visible to the caller's role
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     string  false  "Customer type filter (personal|company)"
// @Success      200   {array}   domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}

	requested := domain.CustomerType(c.QueryParam("type"))
	customers, err := h.customerService.List(c.Request().Context(), principal, requested)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns a single customer record.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerService.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update applies a partial update to a customer record.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateCustomerInput{
		Name:      req.Name,
		Addresses: req.Addresses,
	}
	if req.Type != nil {
		t := domain.CustomerType(*req.Type)
		input.Type = &t
	}

	customer, err := h.customerService.Update(c.Request().Context(), principal, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer record and returns it.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	principal, err := callerPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerService.Delete(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
