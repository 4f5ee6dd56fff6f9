package payments

import (
	"context"
	"testing"
	"time"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every IPaymentGateway implementation must pass the same behaviour checks.
// The live adapter runs against memoryStripe, so both paths stay offline.

var conformanceNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type gatewayHarness struct {
	name string
	new  func() interfaces.IPaymentGateway
}

func gatewayHarnesses() []gatewayHarness {
	opts := Options{Now: func() time.Time { return conformanceNow }}
	return []gatewayHarness{
		{name: "fake", new: func() interfaces.IPaymentGateway {
			return NewFakeGateway("", opts)
		}},
		{name: "stripe", new: func() interfaces.IPaymentGateway {
			return NewStripeGatewayWithAPI(newMemoryStripe(conformanceNow), opts)
		}},
	}
}

func TestGatewayConformance(t *testing.T) {
	checks := []struct {
		name string
		run  func(t *testing.T, gw interfaces.IPaymentGateway)
	}{
		{"customer lifecycle", conformCustomerLifecycle},
		{"payment methods", conformPaymentMethods},
		{"membership plans", conformMembershipPlans},
		{"subscriptions and invoices", conformSubscriptions},
		{"organisation accounts", conformOrganisationAccounts},
		{"bank accounts", conformBankAccounts},
		{"verification", conformVerification},
		{"balance", conformBalance},
		{"token contract", conformTokenContract},
		{"organisation scope", conformScope},
	}
	for _, h := range gatewayHarnesses() {
		for _, c := range checks {
			t.Run(h.name+"/"+c.name, func(t *testing.T) {
				c.run(t, h.new())
			})
		}
	}
}

func newMember(t *testing.T, gw interfaces.IPaymentGateway) (entities.User, entities.Customer) {
	t.Helper()
	user := entities.User{ID: "user-1", Email: "mia@example.com", FirstName: "Mia", LastName: "Member"}
	c, err := gw.CreateCustomer(context.Background(), user)
	require.NoError(t, err)
	return user.WithAttribute(entities.DefaultCustomerAttribute, c.GatewayCustomerID), c
}

func newOrganisation(t *testing.T, gw interfaces.IPaymentGateway) (entities.ConnectAccount, entities.OrganisationAccount) {
	t.Helper()
	account := entities.ConnectAccount{
		ID:             "org-1",
		OwnerEmail:     "owner@gym.example",
		ContactEmail:   "hello@gym.example",
		LongName:       "Gym Example",
		ContactWebsite: "https://gym.example",
		Country:        "Australia",
		BrandingColor:  "#ff6600",
	}
	a, err := gw.CreateOrganisationAccount(context.Background(), account)
	require.NoError(t, err)
	return account.WithAttribute(entities.DefaultAccountAttribute, a.GatewayAccountID), a
}

func goldPlan() entities.MembershipType {
	return entities.MembershipType{ID: "mt-1", Name: "Gold", Cost: 4500, Currency: "AUD", Interval: "month", IntervalCount: 1}
}

func conformCustomerLifecycle(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	user, created := newMember(t, gw)

	require.NotEmpty(t, created.GatewayCustomerID)
	assert.Equal(t, "Mia Member", created.Name)
	assert.Equal(t, "mia@example.com", created.Email)
	assert.NotNil(t, created.PaymentMethods)
	assert.Empty(t, created.PaymentMethods)

	got, err := gw.GetCustomer(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	user.Email = "mia.member@example.com"
	updated, err := gw.UpdateCustomer(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, created.GatewayCustomerID, updated.GatewayCustomerID)
	assert.Equal(t, "mia.member@example.com", updated.Email)

	_, err = gw.GetCustomer(ctx, entities.User{ID: "user-2", Email: "x@example.com"})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	ghost := user.WithAttribute(entities.DefaultCustomerAttribute, "cus_missing")
	_, err = gw.GetCustomer(ctx, ghost)
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = gw.CreateCustomer(ctx, entities.User{ID: "user-3", Email: "not-an-email"})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func conformPaymentMethods(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	user, customer := newMember(t, gw)

	visa, err := gw.SetCustomerDefaultPaymentMethod(ctx, user, TestTokenVisa)
	require.NoError(t, err)
	assert.Equal(t, entities.CardBrandVisa, visa.Brand)
	assert.Equal(t, "4242", visa.Last4)
	assert.Equal(t, customer.GatewayCustomerID, visa.GatewayCustomerID)
	assert.True(t, visa.IsDefault)

	master, err := gw.SetCustomerDefaultPaymentMethod(ctx, user, TestTokenMastercard)
	require.NoError(t, err)
	assert.Equal(t, entities.CardBrandMastercard, master.Brand)

	methods, err := gw.GetCustomerPaymentMethods(ctx, user)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, visa.GatewayMethodID, methods[0].GatewayMethodID)
	assert.Equal(t, master.GatewayMethodID, methods[1].GatewayMethodID)
	assert.False(t, methods[0].IsDefault)
	assert.True(t, methods[1].IsDefault)

	got, err := gw.GetCustomer(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, master.GatewayMethodID, got.DefaultPaymentMethodID)
	assert.Equal(t, methods, got.PaymentMethods)

	remaining, err := gw.RemoveCustomerPaymentMethod(ctx, user, visa.GatewayMethodID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, master.GatewayMethodID, remaining[0].GatewayMethodID)

	again, err := gw.RemoveCustomerPaymentMethod(ctx, user, visa.GatewayMethodID)
	require.NoError(t, err)
	assert.Equal(t, remaining, again)

	_, err = gw.SetCustomerDefaultPaymentMethod(ctx, user, "tok_unknown")
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = gw.SetCustomerDefaultPaymentMethod(ctx, user, " ")
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	token, err := gw.CreateToken(ctx, entities.TokenDetails{
		entities.TokenTypeCard: map[string]any{"number": "4000056655665556", "exp_month": 12, "exp_year": 2030, "cvc": "123"},
	})
	require.NoError(t, err)
	fromToken, err := gw.SetCustomerDefaultPaymentMethod(ctx, user, token.ID())
	require.NoError(t, err)
	assert.Equal(t, entities.CardBrandVisa, fromToken.Brand)
	assert.Equal(t, "5556", fromToken.Last4)
}

func conformMembershipPlans(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()

	plan, err := gw.CreateMembershipPlan(ctx, goldPlan())
	require.NoError(t, err)
	require.NotEmpty(t, plan.GatewayPlanID)
	assert.True(t, plan.Active)
	assert.Equal(t, int64(4500), plan.Amount)
	assert.Equal(t, "aud", plan.Currency)
	assert.Equal(t, "month", plan.Interval)
	assert.Equal(t, int64(1), plan.IntervalCount)
	assert.Equal(t, "Gold", plan.Name)

	deleted, err := gw.DeleteMembershipPlan(ctx, entities.MembershipType{GatewayPlanID: plan.GatewayPlanID})
	require.NoError(t, err)
	assert.Equal(t, plan.GatewayPlanID, deleted.GatewayPlanID)
	assert.False(t, deleted.Active)
	assert.Equal(t, plan.Amount, deleted.Amount)

	inactive := goldPlan()
	off := false
	inactive.Active = &off
	dormant, err := gw.CreateMembershipPlan(ctx, inactive)
	require.NoError(t, err)
	assert.False(t, dormant.Active)

	_, err = gw.DeleteMembershipPlan(ctx, entities.MembershipType{GatewayPlanID: "plan_missing"})
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = gw.DeleteMembershipPlan(ctx, entities.MembershipType{})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	bad := goldPlan()
	bad.Interval = "fortnight"
	_, err = gw.CreateMembershipPlan(ctx, bad)
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func conformSubscriptions(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	user, customer := newMember(t, gw)
	plan, err := gw.CreateMembershipPlan(ctx, goldPlan())
	require.NoError(t, err)
	membership := goldPlan()
	membership.GatewayPlanID = plan.GatewayPlanID

	sub, err := gw.CreateSubscription(ctx, user, membership)
	require.NoError(t, err)
	require.NotEmpty(t, sub.GatewaySubscriptionID)
	assert.Equal(t, customer.GatewayCustomerID, sub.GatewayCustomerID)
	assert.Equal(t, entities.SubscriptionStatusActive, sub.Status)
	assert.False(t, sub.CancelAtPeriodEnd)
	assert.Equal(t, conformanceNow.Unix(), sub.CurrentPeriodStart)
	assert.Equal(t, conformanceNow.AddDate(0, 1, 0).Unix(), sub.CurrentPeriodEnd)

	atPeriodEnd, err := gw.StopSubscription(ctx, sub.GatewaySubscriptionID, true)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusActive, atPeriodEnd.Status)
	assert.True(t, atPeriodEnd.CancelAtPeriodEnd)

	second, err := gw.CreateSubscription(ctx, user, membership)
	require.NoError(t, err)
	now, err := gw.StopSubscription(ctx, second.GatewaySubscriptionID, false)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusCanceled, now.Status)

	_, err = gw.StopSubscription(ctx, "sub_missing", true)
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = gw.CreateSubscription(ctx, user, goldPlan())
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	retired, err := gw.CreateMembershipPlan(ctx, goldPlan())
	require.NoError(t, err)
	lapsed := goldPlan()
	lapsed.GatewayPlanID = retired.GatewayPlanID
	_, err = gw.DeleteMembershipPlan(ctx, lapsed)
	require.NoError(t, err)
	_, err = gw.CreateSubscription(ctx, user, lapsed)
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	invoices, err := gw.GetInvoices(ctx, user)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	for _, inv := range invoices {
		assert.Equal(t, int64(4500), inv.AmountPaid)
		assert.Equal(t, "aud", inv.Currency)
		assert.Equal(t, conformanceNow.Unix(), inv.Created)
	}
}

func conformOrganisationAccounts(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	account, created := newOrganisation(t, gw)

	require.NotEmpty(t, created.GatewayAccountID)
	assert.Equal(t, "AU", created.Country)
	assert.Equal(t, "owner@gym.example", created.Email)
	assert.Equal(t, "hello@gym.example", created.SupportEmail)
	assert.Equal(t, "Gym Example", created.DisplayName)
	assert.Equal(t, "https://gym.example", created.Website)
	assert.Equal(t, "#ff6600", created.BrandingColor)
	assert.False(t, created.PayoutsEnabled)

	got, err := gw.GetOrganisationAccount(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	account.LongName = "Gym Example Pty Ltd"
	updated, err := gw.UpdateOrganisationAccount(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, created.GatewayAccountID, updated.GatewayAccountID)
	assert.Equal(t, "Gym Example Pty Ltd", updated.DisplayName)

	// Account lifecycle is a platform call even from a scoped handle.
	scoped := gw.WithOrganisationAccountID("acct_elsewhere")
	nz := account
	nz.ID = "org-2"
	nz.Country = "nzl"
	other, err := scoped.CreateOrganisationAccount(ctx, nz)
	require.NoError(t, err)
	assert.Equal(t, "NZ", other.Country)

	unknown := account
	unknown.Country = "Atlantis"
	_, err = gw.CreateOrganisationAccount(ctx, unknown)
	require.ErrorIs(t, err, interfaces.ErrResolution)

	_, err = gw.GetOrganisationAccount(ctx, account.WithAttribute(entities.DefaultAccountAttribute, "acct_missing"))
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = gw.GetOrganisationAccount(ctx, entities.ConnectAccount{ID: "org-3"})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func bankToken(t *testing.T, gw interfaces.IPaymentGateway, accountNumber string) entities.Token {
	t.Helper()
	token, err := gw.CreateToken(context.Background(), entities.TokenDetails{
		entities.TokenTypeBankAccount: map[string]any{
			"country":             "Australia",
			"currency":            "AUD",
			"routing_number":      TestBankRoutingNumberAU,
			"account_number":      accountNumber,
			"account_holder_name": "Gym Example",
			"account_holder_type": "company",
		},
	})
	require.NoError(t, err)
	return token
}

func conformBankAccounts(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	account, _ := newOrganisation(t, gw)

	token := bankToken(t, gw, TestBankAccountNumberAU)
	require.NotEmpty(t, token.ID())
	assert.Equal(t, "token", token["object"])
	assert.Equal(t, entities.TokenTypeBankAccount, token["type"])
	section, ok := token[entities.TokenTypeBankAccount].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AU", section["country"])
	assert.Equal(t, "aud", section["currency"])
	assert.Equal(t, "3456", section["last4"])
	assert.NotContains(t, token, entities.TokenTypeCard)

	first, err := gw.AddOrganisationBankAccount(ctx, account, token.ID())
	require.NoError(t, err)
	require.NotEmpty(t, first.GatewayBankAccountID)
	assert.Equal(t, "3456", first.Last4)
	assert.Equal(t, "AU", first.Country)
	assert.Equal(t, "aud", first.Currency)
	assert.Equal(t, TestBankRoutingNumberAU, first.RoutingNumber)
	assert.True(t, first.DefaultForCurrency)

	second, err := gw.AddOrganisationBankAccount(ctx, account, bankToken(t, gw, "000999888").ID())
	require.NoError(t, err)
	assert.Equal(t, "9888", second.Last4)
	assert.False(t, second.DefaultForCurrency)

	all, err := gw.GetAllOrganisationBankAccounts(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, []entities.BankAccount{first, second}, all)

	promoted, err := gw.SetDefaultOrganisationBankAccount(ctx, account, second.GatewayBankAccountID, true)
	require.NoError(t, err)
	assert.True(t, promoted.DefaultForCurrency)
	demoted, err := gw.GetOrganisationBankAccount(ctx, account, first.GatewayBankAccountID)
	require.NoError(t, err)
	assert.False(t, demoted.DefaultForCurrency)

	removed, err := gw.RemoveOrganisationBankAccount(ctx, account, first.GatewayBankAccountID)
	require.NoError(t, err)
	assert.Equal(t, entities.DeletedBankAccount{GatewayBankAccountID: first.GatewayBankAccountID, Deleted: true}, removed)

	_, err = gw.GetOrganisationBankAccount(ctx, account, first.GatewayBankAccountID)
	require.ErrorIs(t, err, interfaces.ErrNotFound)
	_, err = gw.RemoveOrganisationBankAccount(ctx, account, first.GatewayBankAccountID)
	require.ErrorIs(t, err, interfaces.ErrNotFound)
	_, err = gw.AddOrganisationBankAccount(ctx, account, "tok_unknown")
	require.ErrorIs(t, err, interfaces.ErrNotFound)
	_, err = gw.GetAllOrganisationBankAccounts(ctx, entities.ConnectAccount{ID: "org-9"})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func conformVerification(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	account, _ := newOrganisation(t, gw)

	before, err := gw.GetVerificationInformation(ctx, account)
	require.NoError(t, err)
	assert.Nil(t, before.Verified)
	assert.Nil(t, before.DateOfBirth)

	details := entities.VerificationDetails{
		Address:     entities.Address{Line1: "1 Harbour St", City: "Sydney", PostalCode: "2000", State: "NSW"},
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-04-21",
	}
	saved, err := gw.SaveVerificationInformation(ctx, account, details)
	require.NoError(t, err)
	require.NotNil(t, saved.Verified)
	assert.True(t, *saved.Verified)
	assert.True(t, saved.PayoutsEnabled)
	assert.Equal(t, details.Address, saved.Address)
	assert.Equal(t, "Ada", saved.FirstName)
	assert.Equal(t, "Lovelace", saved.LastName)
	require.NotNil(t, saved.DateOfBirth)
	assert.Equal(t, time.Date(1990, time.April, 21, 0, 0, 0, 0, time.UTC), *saved.DateOfBirth)

	got, err := gw.GetVerificationInformation(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	org, err := gw.GetOrganisationAccount(ctx, account)
	require.NoError(t, err)
	assert.True(t, org.PayoutsEnabled)

	details.DateOfBirth = "21st of April"
	_, err = gw.SaveVerificationInformation(ctx, account, details)
	require.ErrorIs(t, err, interfaces.ErrContractViolation)

	details.DateOfBirth = "21/04/1990"
	details.FirstName = ""
	_, err = gw.SaveVerificationInformation(ctx, account, details)
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func conformBalance(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	account, _ := newOrganisation(t, gw)

	balance, err := gw.GetAccountBalance(ctx, account)
	require.NoError(t, err)
	assert.NotNil(t, balance.Available)
	assert.NotNil(t, balance.Pending)

	// The balance always belongs to the account itself, whatever the handle scope.
	scoped, err := gw.WithOrganisationAccountID("acct_elsewhere").GetAccountBalance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, balance, scoped)

	_, err = gw.GetAccountBalance(ctx, entities.ConnectAccount{ID: "org-9"})
	require.ErrorIs(t, err, interfaces.ErrContractViolation)
}

func conformTokenContract(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	cases := []struct {
		name    string
		details entities.TokenDetails
		kind    error
	}{
		{"empty", entities.TokenDetails{}, interfaces.ErrContractViolation},
		{"both shapes", entities.TokenDetails{
			entities.TokenTypeBankAccount: map[string]any{"country": "AU"},
			entities.TokenTypeCard:        map[string]any{"number": "4242424242424242"},
		}, interfaces.ErrContractViolation},
		{"unsupported shape", entities.TokenDetails{"sepa_debit": map[string]any{}}, interfaces.ErrContractViolation},
		{"section not an object", entities.TokenDetails{entities.TokenTypeCard: "4242"}, interfaces.ErrContractViolation},
		{"unknown bank country", entities.TokenDetails{
			entities.TokenTypeBankAccount: map[string]any{"country": "Narnia", "currency": "aud"},
		}, interfaces.ErrResolution},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := gw.CreateToken(ctx, tc.details)
			require.ErrorIs(t, err, tc.kind)
			assert.Nil(t, token)
		})
	}

	card, err := gw.CreateToken(ctx, entities.TokenDetails{
		entities.TokenTypeCard: map[string]any{"number": "5555555555554444", "exp_month": "08", "exp_year": "2031"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TokenTypeCard, card["type"])
	section, ok := card[entities.TokenTypeCard].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Mastercard", section["brand"])
	assert.Equal(t, "4444", section["last4"])
	assert.Equal(t, int64(8), section["exp_month"])
	assert.Equal(t, int64(2031), section["exp_year"])
	assert.NotContains(t, card, entities.TokenTypeBankAccount)
}

func conformScope(t *testing.T, gw interfaces.IPaymentGateway) {
	ctx := context.Background()
	one := gw.WithOrganisationAccountID("acct_one")
	two := gw.WithOrganisationAccountID("acct_two")

	assert.Equal(t, "", gw.OrganisationAccountID())
	assert.Equal(t, "acct_one", one.OrganisationAccountID())
	assert.Equal(t, "acct_two", two.OrganisationAccountID())

	user, _ := newMember(t, one)
	_, err := one.GetCustomer(ctx, user)
	require.NoError(t, err)
	_, err = two.GetCustomer(ctx, user)
	require.ErrorIs(t, err, interfaces.ErrNotFound)
	_, err = gw.GetCustomer(ctx, user)
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	plan, err := one.CreateMembershipPlan(ctx, goldPlan())
	require.NoError(t, err)
	membership := goldPlan()
	membership.GatewayPlanID = plan.GatewayPlanID

	sub, err := one.CreateSubscription(ctx, user, membership)
	require.NoError(t, err)
	_, err = two.StopSubscription(ctx, sub.GatewaySubscriptionID, false)
	require.ErrorIs(t, err, interfaces.ErrNotFound)
	_, err = two.DeleteMembershipPlan(ctx, membership)
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	stopped, err := one.StopSubscription(ctx, sub.GatewaySubscriptionID, false)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusCanceled, stopped.Status)
}
