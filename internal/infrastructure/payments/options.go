package payments

import (
	"errors"
	"strings"
	"time"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

	errEmptyCountry = errors.New("country is empty")
)

// Options configures both gateways.
type Options struct {
	// CustomerAttribute is the host attribute holding the gateway customer id.
	CustomerAttribute string
	// AccountAttribute is the host attribute holding the gateway account id.
	AccountAttribute string
	// Now is the clock used by the fake gateway. Defaults to time.Now.
	Now func() time.Time
	// Observe receives every live Stripe call. Optional.
	Observe CallObserver
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.CustomerAttribute) == "" {
		o.CustomerAttribute = entities.DefaultCustomerAttribute
	}
	if strings.TrimSpace(o.AccountAttribute) == "" {
		o.AccountAttribute = entities.DefaultAccountAttribute
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(op string, v any) error {
	if err := validate.Struct(v); err != nil {
		return interfaces.NewGatewayError(op, interfaces.ErrContractViolation, err)
	}
	return nil
}

func (o Options) customerID(op string, user entities.User) (string, error) {
	id := user.Attribute(o.CustomerAttribute)
	if id == "" {
		return "", interfaces.ContractViolation(op, "user %q has no %s", user.ID, o.CustomerAttribute)
	}
	return id, nil
}

func (o Options) accountID(op string, account entities.ConnectAccount) (string, error) {
	id := account.GatewayAccountID(o.AccountAttribute)
	if id == "" {
		return "", interfaces.ContractViolation(op, "account %q has no %s", account.ID, o.AccountAttribute)
	}
	return id, nil
}

func requireID(op, field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", interfaces.ContractViolation(op, "%s is required", field)
	}
	return value, nil
}

func normalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}

var dateOfBirthLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// ParseDateOfBirth reads a calendar date as UTC midnight.
func ParseDateOfBirth(op, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateOfBirthLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, interfaces.ContractViolation(op, "unparseable date of birth %q", value)
}
