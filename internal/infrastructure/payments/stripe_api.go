package payments

//go:generate mockgen -source=stripe_api.go -destination=mocks/mock_stripe_api.go -package=mocks

import (
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeAPI is the subset of the Stripe API the live gateway calls.
//
// Scope (Stripe-Account), context and idempotency keys travel inside the
// params, so implementations stay stateless.
type StripeAPI interface {
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	GetCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error)
	UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error)

	NewCard(params *stripe.CardParams) (*stripe.Card, error)
	DeleteCard(id string, params *stripe.CardParams) (*stripe.Card, error)

	NewAccount(params *stripe.AccountParams) (*stripe.Account, error)
	GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error)
	UpdateAccount(id string, params *stripe.AccountParams) (*stripe.Account, error)

	NewPlan(params *stripe.PlanParams) (*stripe.Plan, error)
	UpdatePlan(id string, params *stripe.PlanParams) (*stripe.Plan, error)

	NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error)

	ListBankAccounts(params *stripe.BankAccountListParams) ([]*stripe.BankAccount, error)
	GetBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error)
	NewBankAccount(params *stripe.BankAccountParams) (*stripe.BankAccount, error)
	UpdateBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error)
	DeleteBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error)

	GetBalance(params *stripe.BalanceParams) (*stripe.Balance, error)
	ListInvoices(params *stripe.InvoiceListParams) ([]*stripe.Invoice, error)
	NewToken(params *stripe.TokenParams) (*stripe.Token, error)
}

// CallObserver is notified after every Stripe call. err already carries its
// gateway kind.
type CallObserver func(call string, elapsed time.Duration, err error)

type sdkStripeAPI struct {
	api     *client.API
	observe CallObserver
}

var _ StripeAPI = (*sdkStripeAPI)(nil)

// NewStripeAPI wraps the stripe-go client for key. observe may be nil.
func NewStripeAPI(key string, observe CallObserver) StripeAPI {
	if observe == nil {
		observe = func(string, time.Duration, error) {}
	}
	return &sdkStripeAPI{api: client.New(key, nil), observe: observe}
}

func track[T any](s *sdkStripeAPI, call string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	s.observe(call, time.Since(start), stripeError(call, err))
	return out, err
}

func (s *sdkStripeAPI) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return track(s, "customers.create", func() (*stripe.Customer, error) { return s.api.Customers.New(params) })
}

func (s *sdkStripeAPI) GetCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return track(s, "customers.get", func() (*stripe.Customer, error) { return s.api.Customers.Get(id, params) })
}

func (s *sdkStripeAPI) UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return track(s, "customers.update", func() (*stripe.Customer, error) { return s.api.Customers.Update(id, params) })
}

func (s *sdkStripeAPI) NewCard(params *stripe.CardParams) (*stripe.Card, error) {
	return track(s, "cards.create", func() (*stripe.Card, error) { return s.api.Cards.New(params) })
}

func (s *sdkStripeAPI) DeleteCard(id string, params *stripe.CardParams) (*stripe.Card, error) {
	return track(s, "cards.delete", func() (*stripe.Card, error) { return s.api.Cards.Del(id, params) })
}

func (s *sdkStripeAPI) NewAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	return track(s, "accounts.create", func() (*stripe.Account, error) { return s.api.Accounts.New(params) })
}

func (s *sdkStripeAPI) GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	return track(s, "accounts.get", func() (*stripe.Account, error) { return s.api.Accounts.GetByID(id, params) })
}

func (s *sdkStripeAPI) UpdateAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	return track(s, "accounts.update", func() (*stripe.Account, error) { return s.api.Accounts.Update(id, params) })
}

func (s *sdkStripeAPI) NewPlan(params *stripe.PlanParams) (*stripe.Plan, error) {
	return track(s, "plans.create", func() (*stripe.Plan, error) { return s.api.Plans.New(params) })
}

func (s *sdkStripeAPI) UpdatePlan(id string, params *stripe.PlanParams) (*stripe.Plan, error) {
	return track(s, "plans.update", func() (*stripe.Plan, error) { return s.api.Plans.Update(id, params) })
}

func (s *sdkStripeAPI) NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return track(s, "subscriptions.create", func() (*stripe.Subscription, error) { return s.api.Subscriptions.New(params) })
}

func (s *sdkStripeAPI) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return track(s, "subscriptions.update", func() (*stripe.Subscription, error) { return s.api.Subscriptions.Update(id, params) })
}

func (s *sdkStripeAPI) CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	return track(s, "subscriptions.cancel", func() (*stripe.Subscription, error) { return s.api.Subscriptions.Cancel(id, params) })
}

func (s *sdkStripeAPI) ListBankAccounts(params *stripe.BankAccountListParams) ([]*stripe.BankAccount, error) {
	return track(s, "bank_accounts.list", func() ([]*stripe.BankAccount, error) {
		it := s.api.BankAccounts.List(params)
		out := make([]*stripe.BankAccount, 0)
		for it.Next() {
			out = append(out, it.BankAccount())
		}
		return out, it.Err()
	})
}

func (s *sdkStripeAPI) GetBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	return track(s, "bank_accounts.get", func() (*stripe.BankAccount, error) { return s.api.BankAccounts.Get(id, params) })
}

func (s *sdkStripeAPI) NewBankAccount(params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	return track(s, "bank_accounts.create", func() (*stripe.BankAccount, error) { return s.api.BankAccounts.New(params) })
}

func (s *sdkStripeAPI) UpdateBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	return track(s, "bank_accounts.update", func() (*stripe.BankAccount, error) { return s.api.BankAccounts.Update(id, params) })
}

func (s *sdkStripeAPI) DeleteBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	return track(s, "bank_accounts.delete", func() (*stripe.BankAccount, error) { return s.api.BankAccounts.Del(id, params) })
}

func (s *sdkStripeAPI) GetBalance(params *stripe.BalanceParams) (*stripe.Balance, error) {
	return track(s, "balance.get", func() (*stripe.Balance, error) { return s.api.Balance.Get(params) })
}

func (s *sdkStripeAPI) ListInvoices(params *stripe.InvoiceListParams) ([]*stripe.Invoice, error) {
	return track(s, "invoices.list", func() ([]*stripe.Invoice, error) {
		it := s.api.Invoices.List(params)
		out := make([]*stripe.Invoice, 0)
		for it.Next() {
			out = append(out, it.Invoice())
		}
		return out, it.Err()
	})
}

func (s *sdkStripeAPI) NewToken(params *stripe.TokenParams) (*stripe.Token, error) {
	return track(s, "tokens.create", func() (*stripe.Token, error) { return s.api.Tokens.New(params) })
}
