package config

import (
	"os"
	"strconv"
	"strings"

	"financier/internal/domain/entities"
)

const (
	defaultPort              = 8080
	defaultGatewayLinksTable = "gateway_links"
	defaultServiceName       = "financier"
)

// Config is read once at startup.
//
// Supported env vars:
//   - STRIPE_SECRET_KEY (required unless PAYMENT_GATEWAY_MOCK is on)
//   - PAYMENT_GATEWAY_MOCK (1/true/yes/on/mock selects the in-memory gateway)
//   - USER_CUSTOMER_ATTRIBUTE (default: stripe_customer_id)
//   - CONNECT_ACCOUNT_ID_ATTRIBUTE (default: stripe_account_id)
//   - GATEWAY_LINKS_TABLE (default: gateway_links)
//   - PORT (default: 8080)
//   - LOG_LEVEL (default: info)
//   - SERVICE_NAME (default: financier)
//
// AWS_REGION and DYNAMODB_ENDPOINT are read by the database package.
type Config struct {
	ServiceName       string
	Port              int
	LogLevel          string
	StripeSecretKey   string
	GatewayMock       bool
	CustomerAttribute string
	AccountAttribute  string
	GatewayLinksTable string
}

func Load() Config {
	return Config{
		ServiceName:       getenvDefault("SERVICE_NAME", defaultServiceName),
		Port:              getenvInt("PORT", defaultPort),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		StripeSecretKey:   strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		GatewayMock:       IsPaymentGatewayMockEnabled(),
		CustomerAttribute: getenvDefault("USER_CUSTOMER_ATTRIBUTE", entities.DefaultCustomerAttribute),
		AccountAttribute:  getenvDefault("CONNECT_ACCOUNT_ID_ATTRIBUTE", entities.DefaultAccountAttribute),
		GatewayLinksTable: getenvDefault("GATEWAY_LINKS_TABLE", defaultGatewayLinksTable),
	}
}

// IsPaymentGatewayMockEnabled reports whether PAYMENT_GATEWAY_MOCK asks for the fake gateway.
func IsPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
