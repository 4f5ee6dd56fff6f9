package payments

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/stripe/stripe-go/v76"
)

// memoryStripe is an in-memory StripeAPI double. It partitions customers,
// plans, subscriptions and invoices by the Stripe-Account header and keeps
// external accounts under the account named in the URL, like Stripe does.
type memoryStripe struct {
	mu            sync.Mutex
	now           time.Time
	seq           int
	customers     map[string]*stripe.Customer
	customerScope map[string]string
	accounts      map[string]*stripe.Account
	plans         map[string]*stripe.Plan
	planScope     map[string]string
	subs          map[string]*stripe.Subscription
	subScope      map[string]string
	bankAccounts  map[string][]*stripe.BankAccount
	invoices      map[string][]*stripe.Invoice
	tokens        map[string]*stripe.Token
	calls         []string
}

var _ StripeAPI = (*memoryStripe)(nil)

func newMemoryStripe(now time.Time) *memoryStripe {
	return &memoryStripe{
		now:           now,
		customers:     map[string]*stripe.Customer{},
		customerScope: map[string]string{},
		accounts:      map[string]*stripe.Account{},
		plans:         map[string]*stripe.Plan{},
		planScope:     map[string]string{},
		subs:          map[string]*stripe.Subscription{},
		subScope:      map[string]string{},
		bankAccounts:  map[string][]*stripe.BankAccount{},
		invoices:      map[string][]*stripe.Invoice{},
		tokens:        map[string]*stripe.Token{},
	}
}

func (m *memoryStripe) id(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s_mem_%d", prefix, m.seq)
}

func (m *memoryStripe) record(call string) {
	m.calls = append(m.calls, call)
}

func missing(kind, id string) error {
	return &stripe.Error{
		Code:           stripe.ErrorCodeResourceMissing,
		HTTPStatusCode: http.StatusNotFound,
		Msg:            fmt.Sprintf("No such %s: '%s'", kind, id),
	}
}

func invalid(msg string) error {
	return &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: http.StatusBadRequest, Msg: msg}
}

func scopeOf(p *stripe.Params) string {
	return stripe.StringValue(p.StripeAccount)
}

func (m *memoryStripe) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewCustomer")

	c := &stripe.Customer{
		ID:      m.id("cus"),
		Email:   stripe.StringValue(params.Email),
		Name:    stripe.StringValue(params.Name),
		Sources: &stripe.PaymentSourceList{Data: []*stripe.PaymentSource{}},
	}
	m.customers[c.ID] = c
	m.customerScope[c.ID] = scopeOf(&params.Params)
	return c, nil
}

func (m *memoryStripe) customer(id string, p *stripe.Params) (*stripe.Customer, error) {
	c, ok := m.customers[id]
	if !ok || m.customerScope[id] != scopeOf(p) {
		return nil, missing("customer", id)
	}
	return c, nil
}

func (m *memoryStripe) GetCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetCustomer")
	return m.customer(id, &params.Params)
}

func (m *memoryStripe) UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateCustomer")

	c, err := m.customer(id, &params.Params)
	if err != nil {
		return nil, err
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.DefaultSource != nil {
		c.DefaultSource = &stripe.PaymentSource{ID: *params.DefaultSource, Type: stripe.PaymentSourceTypeCard}
	}
	return c, nil
}

func (m *memoryStripe) NewCard(params *stripe.CardParams) (*stripe.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewCard")

	c, err := m.customer(stripe.StringValue(params.Customer), &params.Params)
	if err != nil {
		return nil, err
	}
	token := stripe.StringValue(params.Token)
	var card stripe.Card
	if fc, ok := testCardTokens[token]; ok {
		card = stripe.Card{Brand: stripe.CardBrand(fc.brand), Last4: fc.last4, Country: fc.country}
	} else if t, ok := m.tokens[token]; ok && t.Card != nil {
		card = *t.Card
	} else {
		return nil, missing("token", token)
	}
	card.ID = m.id("card")
	card.Customer = &stripe.Customer{ID: c.ID}

	c.Sources.Data = append(c.Sources.Data, &stripe.PaymentSource{ID: card.ID, Type: stripe.PaymentSourceTypeCard, Card: &card})
	if c.DefaultSource == nil {
		c.DefaultSource = &stripe.PaymentSource{ID: card.ID, Type: stripe.PaymentSourceTypeCard}
	}
	return &card, nil
}

func (m *memoryStripe) DeleteCard(id string, params *stripe.CardParams) (*stripe.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteCard")

	c, err := m.customer(stripe.StringValue(params.Customer), &params.Params)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(c.Sources.Data, func(s *stripe.PaymentSource) bool { return s.ID == id })
	if i < 0 {
		return nil, missing("source", id)
	}
	c.Sources.Data = slices.Delete(c.Sources.Data, i, i+1)
	if c.DefaultSource != nil && c.DefaultSource.ID == id {
		c.DefaultSource = nil
	}
	return &stripe.Card{ID: id, Deleted: true}, nil
}

func (m *memoryStripe) NewAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewAccount")

	if params.StripeAccount != nil {
		return nil, invalid("connected accounts cannot create accounts")
	}
	a := &stripe.Account{
		ID:              m.id("acct"),
		Type:            stripe.AccountType(stripe.StringValue(params.Type)),
		Country:         stripe.StringValue(params.Country),
		BusinessProfile: &stripe.AccountBusinessProfile{},
		Settings:        &stripe.AccountSettings{Branding: &stripe.AccountSettingsBranding{}},
		Requirements:    &stripe.AccountRequirements{DisabledReason: stripe.AccountRequirementsDisabledReasonFieldsNeeded},
	}
	applyAccountParams(a, params)
	m.accounts[a.ID] = a
	return a, nil
}

func applyAccountParams(a *stripe.Account, params *stripe.AccountParams) {
	if params.Email != nil {
		a.Email = *params.Email
	}
	if p := params.BusinessProfile; p != nil {
		if p.Name != nil {
			a.BusinessProfile.Name = *p.Name
		}
		if p.SupportEmail != nil {
			a.BusinessProfile.SupportEmail = *p.SupportEmail
		}
		if p.URL != nil {
			a.BusinessProfile.URL = *p.URL
		}
	}
	if s := params.Settings; s != nil && s.Branding != nil && s.Branding.PrimaryColor != nil {
		a.Settings.Branding.PrimaryColor = *s.Branding.PrimaryColor
	}
	if ind := params.Individual; ind != nil {
		person := &stripe.Person{
			FirstName:    stripe.StringValue(ind.FirstName),
			LastName:     stripe.StringValue(ind.LastName),
			Verification: &stripe.PersonVerification{Status: stripe.PersonVerificationStatusVerified},
		}
		if ind.Address != nil {
			person.Address = &stripe.Address{
				Line1:      stripe.StringValue(ind.Address.Line1),
				City:       stripe.StringValue(ind.Address.City),
				PostalCode: stripe.StringValue(ind.Address.PostalCode),
				State:      stripe.StringValue(ind.Address.State),
			}
		}
		if ind.DOB != nil {
			person.DOB = &stripe.PersonDOB{
				Day:   stripe.Int64Value(ind.DOB.Day),
				Month: stripe.Int64Value(ind.DOB.Month),
				Year:  stripe.Int64Value(ind.DOB.Year),
			}
		}
		a.Individual = person
		a.PayoutsEnabled = true
		a.Requirements = &stripe.AccountRequirements{}
	}
}

func (m *memoryStripe) GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetAccount")

	a, ok := m.accounts[id]
	if !ok || params.StripeAccount != nil {
		return nil, missing("account", id)
	}
	return a, nil
}

func (m *memoryStripe) UpdateAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateAccount")

	a, ok := m.accounts[id]
	if !ok || params.StripeAccount != nil {
		return nil, missing("account", id)
	}
	applyAccountParams(a, params)
	return a, nil
}

func (m *memoryStripe) NewPlan(params *stripe.PlanParams) (*stripe.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewPlan")

	p := &stripe.Plan{
		ID:            m.id("plan"),
		Active:        stripe.BoolValue(params.Active),
		Amount:        stripe.Int64Value(params.Amount),
		Currency:      stripe.Currency(stripe.StringValue(params.Currency)),
		Interval:      stripe.PlanInterval(stripe.StringValue(params.Interval)),
		IntervalCount: stripe.Int64Value(params.IntervalCount),
	}
	if params.Product != nil {
		p.Product = &stripe.Product{ID: m.id("prod"), Name: stripe.StringValue(params.Product.Name)}
	}
	m.plans[p.ID] = p
	m.planScope[p.ID] = scopeOf(&params.Params)
	return p, nil
}

func (m *memoryStripe) UpdatePlan(id string, params *stripe.PlanParams) (*stripe.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdatePlan")

	p, ok := m.plans[id]
	if !ok || m.planScope[id] != scopeOf(&params.Params) {
		return nil, missing("plan", id)
	}
	if params.Active != nil {
		p.Active = *params.Active
	}
	return p, nil
}

func (m *memoryStripe) NewSubscription(params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewSubscription")

	scope := scopeOf(&params.Params)
	c, err := m.customer(stripe.StringValue(params.Customer), &params.Params)
	if err != nil {
		return nil, err
	}
	if len(params.Items) != 1 {
		return nil, invalid("exactly one item expected")
	}
	planID := stripe.StringValue(params.Items[0].Plan)
	p, ok := m.plans[planID]
	if !ok || m.planScope[planID] != scope {
		return nil, missing("plan", planID)
	}
	if !p.Active {
		return nil, invalid(fmt.Sprintf("The price specified is inactive. This field only accepts active prices: %s", planID))
	}

	s := &stripe.Subscription{
		ID:                 m.id("sub"),
		Customer:           &stripe.Customer{ID: c.ID},
		Status:             stripe.SubscriptionStatusActive,
		CurrentPeriodStart: m.now.Unix(),
		CurrentPeriodEnd:   periodEnd(m.now, string(p.Interval), p.IntervalCount).Unix(),
	}
	m.subs[s.ID] = s
	m.subScope[s.ID] = scope
	m.invoices[c.ID] = append(m.invoices[c.ID], &stripe.Invoice{
		ID:               m.id("in"),
		Created:          m.now.Unix(),
		AmountPaid:       p.Amount,
		Currency:         p.Currency,
		HostedInvoiceURL: "https://invoice.stripe.com/i/" + s.ID,
	})
	return s, nil
}

func (m *memoryStripe) subscription(id string, p *stripe.Params) (*stripe.Subscription, error) {
	s, ok := m.subs[id]
	if !ok || m.subScope[id] != scopeOf(p) {
		return nil, missing("subscription", id)
	}
	return s, nil
}

func (m *memoryStripe) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateSubscription")

	s, err := m.subscription(id, &params.Params)
	if err != nil {
		return nil, err
	}
	if params.CancelAtPeriodEnd != nil {
		s.CancelAtPeriodEnd = *params.CancelAtPeriodEnd
	}
	return s, nil
}

func (m *memoryStripe) CancelSubscription(id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CancelSubscription")

	s, err := m.subscription(id, &params.Params)
	if err != nil {
		return nil, err
	}
	s.Status = stripe.SubscriptionStatusCanceled
	return s, nil
}

func (m *memoryStripe) externalAccounts(account *string) ([]*stripe.BankAccount, error) {
	id := stripe.StringValue(account)
	if _, ok := m.accounts[id]; !ok {
		return nil, missing("account", id)
	}
	return m.bankAccounts[id], nil
}

func (m *memoryStripe) ListBankAccounts(params *stripe.BankAccountListParams) ([]*stripe.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListBankAccounts")

	list, err := m.externalAccounts(params.Account)
	if err != nil {
		return nil, err
	}
	limit := int(stripe.Int64Value(params.Limit))
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return slices.Clone(list), nil
}

func (m *memoryStripe) bankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	list, err := m.externalAccounts(params.Account)
	if err != nil {
		return nil, err
	}
	for _, b := range list {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, missing("external account", id)
}

func (m *memoryStripe) GetBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetBankAccount")
	return m.bankAccount(id, params)
}

func (m *memoryStripe) NewBankAccount(params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewBankAccount")

	accountID := stripe.StringValue(params.Account)
	list, err := m.externalAccounts(params.Account)
	if err != nil {
		return nil, err
	}
	token := stripe.StringValue(params.Token)
	t, ok := m.tokens[token]
	if !ok || t.BankAccount == nil {
		return nil, missing("token", token)
	}
	b := *t.BankAccount
	b.ID = m.id("ba")
	b.DefaultForCurrency = !slices.ContainsFunc(list, func(existing *stripe.BankAccount) bool {
		return existing.Currency == b.Currency && existing.DefaultForCurrency
	})
	m.bankAccounts[accountID] = append(list, &b)
	return &b, nil
}

func (m *memoryStripe) UpdateBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateBankAccount")

	b, err := m.bankAccount(id, params)
	if err != nil {
		return nil, err
	}
	if params.DefaultForCurrency != nil {
		if *params.DefaultForCurrency {
			for _, other := range m.bankAccounts[stripe.StringValue(params.Account)] {
				if other.Currency == b.Currency {
					other.DefaultForCurrency = false
				}
			}
		}
		b.DefaultForCurrency = *params.DefaultForCurrency
	}
	return b, nil
}

func (m *memoryStripe) DeleteBankAccount(id string, params *stripe.BankAccountParams) (*stripe.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteBankAccount")

	if _, err := m.bankAccount(id, params); err != nil {
		return nil, err
	}
	accountID := stripe.StringValue(params.Account)
	m.bankAccounts[accountID] = slices.DeleteFunc(m.bankAccounts[accountID], func(b *stripe.BankAccount) bool {
		return b.ID == id
	})
	return &stripe.BankAccount{ID: id, Deleted: true}, nil
}

func (m *memoryStripe) GetBalance(params *stripe.BalanceParams) (*stripe.Balance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetBalance")

	id := scopeOf(&params.Params)
	if _, ok := m.accounts[id]; !ok {
		return nil, invalid("balance requires a connected account")
	}
	return &stripe.Balance{Available: []*stripe.Amount{}, Pending: []*stripe.Amount{}}, nil
}

func (m *memoryStripe) ListInvoices(params *stripe.InvoiceListParams) ([]*stripe.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListInvoices")

	id := stripe.StringValue(params.Customer)
	c, ok := m.customers[id]
	if !ok || m.customerScope[id] != stripe.StringValue(params.StripeAccount) {
		return nil, missing("customer", id)
	}
	return slices.Clone(m.invoices[c.ID]), nil
}

func (m *memoryStripe) NewToken(params *stripe.TokenParams) (*stripe.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NewToken")

	t := &stripe.Token{Created: m.now.Unix(), ClientIP: "127.0.0.1"}
	switch {
	case params.BankAccount != nil:
		b := params.BankAccount
		t.ID = m.id("btok")
		t.Type = stripe.TokenTypeBankAccount
		t.BankAccount = &stripe.BankAccount{
			ID:                m.id("ba"),
			AccountHolderName: stripe.StringValue(b.AccountHolderName),
			BankName:          "STRIPE TEST BANK",
			Country:           stripe.StringValue(b.Country),
			Currency:          stripe.Currency(stripe.StringValue(b.Currency)),
			Last4:             lastFour(stripe.StringValue(b.AccountNumber), "3456"),
			RoutingNumber:     stripe.StringValue(b.RoutingNumber),
			Status:            stripe.BankAccountStatusNew,
		}
	case params.Card != nil:
		c := params.Card
		number := stripe.StringValue(c.Number)
		expMonth, _ := strconv.ParseInt(stripe.StringValue(c.ExpMonth), 10, 64)
		expYear, _ := strconv.ParseInt(stripe.StringValue(c.ExpYear), 10, 64)
		brand := stripe.CardBrandUnknown
		if strings.HasPrefix(number, "4") {
			brand = stripe.CardBrandVisa
		} else if strings.HasPrefix(number, "5") {
			brand = stripe.CardBrandMasterCard
		}
		t.ID = m.id("tok")
		t.Type = stripe.TokenTypeCard
		t.Card = &stripe.Card{ID: m.id("card"), Brand: brand, Last4: lastFour(number, "4242"), Country: "US", ExpMonth: expMonth, ExpYear: expYear}
	default:
		return nil, errors.New("token params need a bank account or a card")
	}
	m.tokens[t.ID] = t
	return t, nil
}
