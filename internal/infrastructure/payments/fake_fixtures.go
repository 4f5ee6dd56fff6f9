package payments

import (
	"math/rand/v2"
	"time"

	"financier/internal/domain/entities"
)

// Canned identifiers served by FakeGateway.
const (
	FakeCustomerID     = "cus_123456789ABCDEF"
	FakeAccountID      = "acct_123456789ABCDEF"
	FakePlanID         = "plan_123456789ABCDEF"
	FakeSubscriptionID = "sub_123456789ABCDEF"
	FakeBankAccountID  = "ba_123456789"
	FakeBankAccountID2 = "ba_987654321"
)

// anyScope marks fixtures visible from every organisation scope.
const anyScope = "*"

// supportedCountries are the countries Stripe accepts card payments from;
// the fake picks card countries from it.
var supportedCountries = []string{
	"AT", "AU", "BE", "BG", "BR", "CA", "CH", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR",
	"GB", "GR", "HK", "HU", "IE", "IN", "IT", "JP", "LT", "LU", "LV", "MT", "MX", "MY", "NL",
	"NO", "NZ", "PL", "PT", "RO", "SE", "SG", "SI", "SK", "TH", "US",
}

// testCardTokens maps the Stripe test tokens to the card they stand for.
var testCardTokens = map[string]fakeCard{
	TestTokenVisa:       {brand: entities.CardBrandVisa, last4: "4242", country: "US"},
	TestTokenMastercard: {brand: entities.CardBrandMastercard, last4: "4444", country: "US"},
	"tok_amex":          {brand: entities.CardBrandAmericanExpress, last4: "8431", country: "US"},
	"tok_discover":      {brand: entities.CardBrandDiscover, last4: "1117", country: "US"},
	"tok_au":            {brand: entities.CardBrandVisa, last4: "0000", country: "AU"},
}

type fakeCard struct {
	brand   entities.CardBrand
	last4   string
	country string
}

func randomCountry() string {
	return supportedCountries[rand.N(len(supportedCountries))]
}

func seedFakeStore(s *fakeStore, now time.Time) {
	s.customers[FakeCustomerID] = &fakeCustomer{
		scope: anyScope,
		customer: entities.Customer{
			GatewayCustomerID:      FakeCustomerID,
			Email:                  "testy.tester@example.com",
			Name:                   "Testy Tester",
			DefaultPaymentMethodID: "card_test_ABCDEF_CARD01",
			PaymentMethods: []entities.PaymentMethod{
				{GatewayMethodID: "card_test_ABCDEF_CARD01", GatewayCustomerID: FakeCustomerID, Last4: "1234", Brand: entities.CardBrandVisa, Country: randomCountry(), IsDefault: true},
				{GatewayMethodID: "card_test_ABCDEF_CARD02", GatewayCustomerID: FakeCustomerID, Last4: "4321", Brand: entities.CardBrandMastercard, Country: randomCountry()},
				{GatewayMethodID: "card_test_ABCDEF_CARD03", GatewayCustomerID: FakeCustomerID, Last4: "5678", Brand: entities.CardBrandUnknown, Country: randomCountry()},
			},
		},
		invoices: []entities.Invoice{
			{Created: 123456789, AmountPaid: 10000, HostedInvoiceURL: "https://invoice.stripe.com/i/acct_123456789ABCDEF/test_fake_invoice", Currency: "aud"},
		},
	}

	s.plans[FakePlanID] = &fakePlan{
		scope: anyScope,
		plan: entities.MembershipPlan{
			GatewayPlanID: FakePlanID,
			Active:        true,
			Amount:        2500,
			Currency:      "aud",
			Interval:      "month",
			IntervalCount: 1,
			Name:          "Standard Membership",
		},
	}

	s.subscriptions[FakeSubscriptionID] = &fakeSubscription{
		scope: anyScope,
		subscription: entities.Subscription{
			GatewaySubscriptionID: FakeSubscriptionID,
			GatewayCustomerID:     FakeCustomerID,
			Status:                entities.SubscriptionStatusActive,
			CurrentPeriodStart:    now.Unix(),
			CurrentPeriodEnd:      now.AddDate(0, 0, 14).Unix(),
		},
	}

	dob := time.Date(now.Year()-21, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	s.accounts[FakeAccountID] = &fakeAccount{
		account: entities.OrganisationAccount{
			GatewayAccountID: FakeAccountID,
			Email:            "owner@example.com",
			SupportEmail:     "support@example.com",
			DisplayName:      "Testy Tester Fitness",
			Website:          "https://example.com",
			Country:          "AU",
			BrandingColor:    "#3366ff",
			PayoutsEnabled:   true,
		},
		bankAccounts: []entities.BankAccount{
			{GatewayBankAccountID: FakeBankAccountID, BankName: "Commbank", Country: "AU", Currency: "aud", Last4: "4567", RoutingNumber: "123456", DefaultForCurrency: true},
			{GatewayBankAccountID: FakeBankAccountID2, BankName: "Westpac", Country: "AU", Currency: "aud", Last4: "7654", RoutingNumber: "654321"},
		},
		verification: entities.Verification{
			PayoutsEnabled: true,
			Address: entities.Address{
				Line1:      "7 Test Tester Lane",
				City:       "Canberra",
				PostalCode: "2901",
				State:      "Australian Capital Territory",
			},
			FirstName:   "Testy",
			LastName:    "Tester",
			DateOfBirth: &dob,
		},
		balance: entities.Balance{
			Available: []entities.BalanceAmount{{Amount: 12345678, Currency: "aud", Breakdown: map[string]int64{"card": 12345678}}},
			Pending:   []entities.BalanceAmount{{Amount: 12345678, Currency: "aud", Breakdown: map[string]int64{"card": 12345678}}},
		},
	}
}
