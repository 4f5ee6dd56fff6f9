package entities

// CardBrand is the processor-independent card network of a PaymentMethod.
type CardBrand string

const (
	CardBrandVisa            CardBrand = "Visa"
	CardBrandMastercard      CardBrand = "Mastercard"
	CardBrandAmericanExpress CardBrand = "American Express"
	CardBrandDiscover        CardBrand = "Discover"
	CardBrandJCB             CardBrand = "JCB"
	CardBrandDinersClub      CardBrand = "Diners Club"
	CardBrandUnionPay        CardBrand = "UnionPay"
	CardBrandUnknown         CardBrand = "Unknown"
)

// Customer is the canonical gateway customer of a host user.
//
// Invariants:
//   - PaymentMethods keeps the order reported by the gateway.
//   - At most one entry has IsDefault set, and it matches DefaultPaymentMethodID.
type Customer struct {
	GatewayCustomerID      string          `json:"gateway_customer_id"`
	Email                  string          `json:"email"`
	Name                   string          `json:"name"`
	DefaultPaymentMethodID string          `json:"default_payment_method_id"`
	PaymentMethods         []PaymentMethod `json:"payment_methods"`
}

// PaymentMethod is a card attached to a gateway customer.
type PaymentMethod struct {
	GatewayMethodID   string    `json:"gateway_method_id"`
	GatewayCustomerID string    `json:"gateway_customer_id"`
	Last4             string    `json:"last4"`
	Brand             CardBrand `json:"brand"`
	Country           string    `json:"country"`
	IsDefault         bool      `json:"is_default"`
}

// DefaultPaymentMethod returns the method flagged as default, if any.
func (c Customer) DefaultPaymentMethod() (PaymentMethod, bool) {
	for _, m := range c.PaymentMethods {
		if m.IsDefault {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
