package handlers

import (
	"net/http"

	request "financier/internal/adapter/http/dto/request"
	response "financier/internal/adapter/http/dto/response"
	"financier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CustomerHandler exposes gateway customers of host users.
type CustomerHandler struct {
	usecase usecase.IBillingUseCase
	log     logrus.FieldLogger
}

func NewCustomerHandler(uc usecase.IBillingUseCase, log logrus.FieldLogger) *CustomerHandler {
	return &CustomerHandler{usecase: uc, log: log.WithField("component", "billing.handler.customer")}
}

// RegisterCustomer godoc
// @Summary      Register a customer
// @Description  Creates the gateway customer of a host user, or returns the existing one.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        X-Organisation-Account  header  string                   false  "Organisation the customer belongs to"
// @Param        payload                 body    request.CustomerRequest  true   "Customer"
// @Success      201  {object}  entities.Customer
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) RegisterCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "register-customer", err)
		return
	}

	customer, err := h.usecase.RegisterCustomer(c.Request.Context(), organisationScope(c), payload.ToUser())
	if err != nil {
		respondError(c, h.log, "register-customer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    user_id  path  string  true  "Host user id"
// @Success  200  {object}  entities.Customer
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{user_id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetCustomer(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.log, "get-customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer godoc
// @Summary  Update a customer's email and name
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    user_id  path  string                   true  "Host user id"
// @Param    payload  body  request.CustomerRequest  true  "Customer"
// @Success  200  {object}  entities.Customer
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{user_id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "update-customer", err)
		return
	}
	payload.UserID = c.Param("user_id")

	customer, err := h.usecase.UpdateCustomer(c.Request.Context(), payload.ToUser())
	if err != nil {
		respondError(c, h.log, "update-customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetPaymentMethods godoc
// @Summary  List a customer's cards
// @Tags     customers
// @Produce  json
// @Param    user_id  path  string  true  "Host user id"
// @Success  200  {object}  response.PaymentMethodsResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{user_id}/payment-methods [get]
func (h *CustomerHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.usecase.GetPaymentMethods(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.log, "get-payment-methods", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(methods))
}

// SetDefaultPaymentMethod godoc
// @Summary      Attach a card and make it the default
// @Description  The token is a card token; the new card becomes the customer's default.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                true  "Host user id"
// @Param        payload  body  request.TokenRequest  true  "Card token"
// @Success      200  {object}  entities.PaymentMethod
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{user_id}/payment-methods [post]
func (h *CustomerHandler) SetDefaultPaymentMethod(c *gin.Context) {
	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, h.log, "set-default-payment-method", err)
		return
	}

	method, err := h.usecase.SetDefaultPaymentMethod(c.Request.Context(), c.Param("user_id"), payload.Token)
	if err != nil {
		respondError(c, h.log, "set-default-payment-method", err)
		return
	}
	c.JSON(http.StatusOK, method)
}

// RemovePaymentMethod godoc
// @Summary      Remove a card
// @Description  Removing an unknown card is a no-op; the remaining cards are returned either way.
// @Tags         customers
// @Produce      json
// @Param        user_id    path  string  true  "Host user id"
// @Param        method_id  path  string  true  "Gateway card id"
// @Success      200  {object}  response.PaymentMethodsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{user_id}/payment-methods/{method_id} [delete]
func (h *CustomerHandler) RemovePaymentMethod(c *gin.Context) {
	remaining, err := h.usecase.RemovePaymentMethod(c.Request.Context(), c.Param("user_id"), c.Param("method_id"))
	if err != nil {
		respondError(c, h.log, "remove-payment-method", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(remaining))
}

// GetInvoices godoc
// @Summary  List a customer's invoices
// @Tags     customers
// @Produce  json
// @Param    user_id  path  string  true  "Host user id"
// @Success  200  {array}   response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{user_id}/invoices [get]
func (h *CustomerHandler) GetInvoices(c *gin.Context) {
	invoices, err := h.usecase.GetInvoices(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, h.log, "get-invoices", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}
