package payments

import (
	"errors"
	"net/http"

	"financier/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
)

// stripeError classifies a stripe-go failure. Missing resources become
// ErrNotFound, requests the processor rejected as invalid become
// ErrContractViolation, everything else is a transport failure.
func stripeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if interfaces.ErrorKind(err) != nil {
		return err
	}
	if isResourceMissing(err) {
		return interfaces.NewGatewayError(op, interfaces.ErrNotFound, err)
	}
	if isInvalidRequest(err) {
		return interfaces.NewGatewayError(op, interfaces.ErrContractViolation, err)
	}
	return interfaces.NewGatewayError(op, interfaces.ErrTransport, err)
}

func isResourceMissing(err error) bool {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == stripe.ErrorCodeResourceMissing || se.HTTPStatusCode == http.StatusNotFound
}

func isInvalidRequest(err error) bool {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Type == stripe.ErrorTypeInvalidRequest && se.HTTPStatusCode == http.StatusBadRequest
}
