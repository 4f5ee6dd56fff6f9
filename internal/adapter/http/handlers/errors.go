package handlers

import (
	"errors"
	"net/http"

	"financier/internal/usecase"
	"financier/internal/usecase/interfaces"
	"financier/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrganisationAccountHeader names the organisation a request acts for.
// Absent means the platform itself.
const OrganisationAccountHeader = "X-Organisation-Account"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func organisationScope(c *gin.Context) string {
	return c.GetHeader(OrganisationAccountHeader)
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidOrganisationID),
		errors.Is(err, usecase.ErrInvalidPlanID),
		errors.Is(err, usecase.ErrInvalidSubscriptionID),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidBankAccountID),
		errors.Is(err, usecase.ErrInvalidPaymentMethodID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCustomerNotRegistered):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_REGISTERED", "Customer not registered with the payment gateway", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrganisationNotRegistered):
		return pkg.NewDomainErrorSimple("ORGANISATION_NOT_REGISTERED", "Organisation not registered with the payment gateway", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_FOUND", "Resource not found at the payment provider", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrContractViolation):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_INPUT", "Input rejected by the payment gateway", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrResolution):
		return pkg.NewDomainError("PAYMENT_PROVIDER_RESOLUTION_FAILED", "Could not resolve the input for the payment provider", err, http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrTransport):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, log logrus.FieldLogger, op string, err error) {
	appErr := mapBillingError(err)
	entry := log.WithFields(logrus.Fields{"op": op, "code": appErr.Code, "status": appErr.HTTPStatus}).WithError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, log logrus.FieldLogger, op string, err error) {
	log.WithFields(logrus.Fields{"op": op}).WithError(err).Warn("invalid payload")
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}
