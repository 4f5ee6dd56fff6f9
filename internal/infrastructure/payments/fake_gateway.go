package payments

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"
)

// FakeGateway is an in-memory IPaymentGateway for tests and local runs.
//
// It starts from a canned fixture set (FakeCustomerID, FakeAccountID, ...)
// and keeps every mutation, so call chains stay consistent. Identifiers of
// created records are sequential ("cus_fake_0001"). Customers, plans and
// subscriptions created under an organisation scope are only visible from
// that scope; fixtures are visible from all of them.
type FakeGateway struct {
	store *fakeStore
	opts  Options
	scope string
}

var _ interfaces.IPaymentGateway = (*FakeGateway)(nil)

type fakeStore struct {
	mu            sync.RWMutex
	seq           map[string]int
	customers     map[string]*fakeCustomer
	accounts      map[string]*fakeAccount
	plans         map[string]*fakePlan
	subscriptions map[string]*fakeSubscription
	tokens        map[string]entities.Token
}

type fakeCustomer struct {
	scope    string
	customer entities.Customer
	invoices []entities.Invoice
}

type fakeAccount struct {
	account      entities.OrganisationAccount
	bankAccounts []entities.BankAccount
	verification entities.Verification
	balance      entities.Balance
}

type fakePlan struct {
	scope string
	plan  entities.MembershipPlan
}

type fakeSubscription struct {
	scope        string
	subscription entities.Subscription
}

// NewFakeGateway builds a fake seeded with the canned fixtures. apiKey is
// accepted for signature parity and ignored; it may be empty.
func NewFakeGateway(apiKey string, opts Options) *FakeGateway {
	_ = apiKey
	opts = opts.withDefaults()
	store := &fakeStore{
		seq:           map[string]int{},
		customers:     map[string]*fakeCustomer{},
		accounts:      map[string]*fakeAccount{},
		plans:         map[string]*fakePlan{},
		subscriptions: map[string]*fakeSubscription{},
		tokens:        map[string]entities.Token{},
	}
	seedFakeStore(store, opts.Now().UTC())
	return &FakeGateway{store: store, opts: opts}
}

func (g *FakeGateway) WithOrganisationAccountID(organisationAccountID string) interfaces.IPaymentGateway {
	scoped := *g
	scoped.scope = strings.TrimSpace(organisationAccountID)
	return &scoped
}

func (g *FakeGateway) OrganisationAccountID() string {
	return g.scope
}

// nextID must be called with the write lock held.
func (s *fakeStore) nextID(prefix string) string {
	s.seq[prefix]++
	return fmt.Sprintf("%s_fake_%04d", prefix, s.seq[prefix])
}

func (g *FakeGateway) visible(scope string) bool {
	return scope == anyScope || scope == g.scope
}

func (g *FakeGateway) customer(op string, user entities.User) (*fakeCustomer, error) {
	id, err := g.opts.customerID(op, user)
	if err != nil {
		return nil, err
	}
	c, ok := g.store.customers[id]
	if !ok || !g.visible(c.scope) {
		return nil, interfaces.NotFound(op, "no such customer: %s", id)
	}
	return c, nil
}

func (g *FakeGateway) account(op string, account entities.ConnectAccount) (*fakeAccount, error) {
	id, err := g.opts.accountID(op, account)
	if err != nil {
		return nil, err
	}
	a, ok := g.store.accounts[id]
	if !ok {
		return nil, interfaces.NotFound(op, "no such account: %s", id)
	}
	return a, nil
}

func (g *FakeGateway) CreateCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	const op = "CreateCustomer"
	if err := validateInput(op, user); err != nil {
		return entities.Customer{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c := &fakeCustomer{
		scope: g.scope,
		customer: entities.Customer{
			GatewayCustomerID: g.store.nextID("cus"),
			Email:             user.Email,
			Name:              user.Name(),
			PaymentMethods:    []entities.PaymentMethod{},
		},
	}
	g.store.customers[c.customer.GatewayCustomerID] = c
	return copyCustomer(c.customer), nil
}

func (g *FakeGateway) GetCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	c, err := g.customer("GetCustomer", user)
	if err != nil {
		return entities.Customer{}, err
	}
	return copyCustomer(c.customer), nil
}

func (g *FakeGateway) UpdateCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	const op = "UpdateCustomer"
	if err := validateInput(op, user); err != nil {
		return entities.Customer{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, err := g.customer(op, user)
	if err != nil {
		return entities.Customer{}, err
	}
	c.customer.Email = user.Email
	c.customer.Name = user.Name()
	return copyCustomer(c.customer), nil
}

func (g *FakeGateway) CreateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	const op = "CreateOrganisationAccount"
	if err := validateInput(op, account); err != nil {
		return entities.OrganisationAccount{}, err
	}
	country, err := ResolveCountry(account.Country)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a := &fakeAccount{
		account: entities.OrganisationAccount{
			GatewayAccountID: g.store.nextID("acct"),
			Country:          country,
		},
		bankAccounts: []entities.BankAccount{},
		balance:      entities.Balance{Available: []entities.BalanceAmount{}, Pending: []entities.BalanceAmount{}},
	}
	applyConnectAccount(&a.account, account)
	g.store.accounts[a.account.GatewayAccountID] = a
	return a.account, nil
}

func applyConnectAccount(out *entities.OrganisationAccount, in entities.ConnectAccount) {
	out.Email = in.OwnerEmail
	out.DisplayName = in.LongName
	if in.ContactEmail != "" {
		out.SupportEmail = in.ContactEmail
	}
	if in.ContactWebsite != "" {
		out.Website = in.ContactWebsite
	}
	if in.BrandingColor != "" {
		out.BrandingColor = in.BrandingColor
	}
}

func (g *FakeGateway) GetOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	a, err := g.account("GetOrganisationAccount", account)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}
	return a.account, nil
}

func (g *FakeGateway) UpdateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	const op = "UpdateOrganisationAccount"
	if err := validateInput(op, account); err != nil {
		return entities.OrganisationAccount{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}
	applyConnectAccount(&a.account, account)
	return a.account, nil
}

func (g *FakeGateway) CreateMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error) {
	const op = "CreateMembershipPlan"
	if err := validateInput(op, plan); err != nil {
		return entities.MembershipPlan{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	p := &fakePlan{
		scope: g.scope,
		plan: entities.MembershipPlan{
			GatewayPlanID: g.store.nextID("plan"),
			Active:        plan.IsActive(),
			Amount:        plan.Cost,
			Currency:      normalizeCurrency(plan.Currency),
			Interval:      plan.Interval,
			IntervalCount: plan.IntervalCount,
			Name:          plan.Name,
		},
	}
	g.store.plans[p.plan.GatewayPlanID] = p
	return p.plan, nil
}

func (g *FakeGateway) DeleteMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error) {
	const op = "DeleteMembershipPlan"
	planID, err := requireID(op, "gateway_plan_id", plan.GatewayPlanID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	p, ok := g.store.plans[planID]
	if !ok || !g.visible(p.scope) {
		return entities.MembershipPlan{}, interfaces.NotFound(op, "no such plan: %s", planID)
	}
	p.plan.Active = false
	return p.plan, nil
}

func (g *FakeGateway) SetCustomerDefaultPaymentMethod(ctx context.Context, user entities.User, token string) (entities.PaymentMethod, error) {
	const op = "SetCustomerDefaultPaymentMethod"
	token, err := requireID(op, "token", token)
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, err := g.customer(op, user)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	card, ok := g.store.cardForToken(token)
	if !ok {
		return entities.PaymentMethod{}, interfaces.NotFound(op, "no such token: %s", token)
	}

	method := entities.PaymentMethod{
		GatewayMethodID:   g.store.nextID("card"),
		GatewayCustomerID: c.customer.GatewayCustomerID,
		Last4:             card.last4,
		Brand:             card.brand,
		Country:           card.country,
		IsDefault:         true,
	}
	for i := range c.customer.PaymentMethods {
		c.customer.PaymentMethods[i].IsDefault = false
	}
	c.customer.PaymentMethods = append(c.customer.PaymentMethods, method)
	c.customer.DefaultPaymentMethodID = method.GatewayMethodID
	return method, nil
}

// cardForToken resolves Stripe test tokens and card tokens issued by CreateToken.
func (s *fakeStore) cardForToken(token string) (fakeCard, bool) {
	if card, ok := testCardTokens[token]; ok {
		return card, true
	}
	t, ok := s.tokens[token]
	if !ok {
		return fakeCard{}, false
	}
	section, ok := t[entities.TokenTypeCard].(map[string]any)
	if !ok {
		return fakeCard{}, false
	}
	card := fakeCard{}
	brand, _ := section["brand"].(string)
	card.brand = entities.CardBrand(brand)
	card.last4, _ = section["last4"].(string)
	card.country, _ = section["country"].(string)
	return card, true
}

func (g *FakeGateway) CreateSubscription(ctx context.Context, user entities.User, plan entities.MembershipType) (entities.Subscription, error) {
	const op = "CreateSubscription"
	planID, err := requireID(op, "gateway_plan_id", plan.GatewayPlanID)
	if err != nil {
		return entities.Subscription{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, err := g.customer(op, user)
	if err != nil {
		return entities.Subscription{}, err
	}
	p, ok := g.store.plans[planID]
	if !ok || !g.visible(p.scope) {
		return entities.Subscription{}, interfaces.NotFound(op, "no such plan: %s", planID)
	}
	if !p.plan.Active {
		return entities.Subscription{}, interfaces.ContractViolation(op, "plan %s is inactive", planID)
	}

	now := g.opts.Now().UTC()
	s := &fakeSubscription{
		scope: g.scope,
		subscription: entities.Subscription{
			GatewaySubscriptionID: g.store.nextID("sub"),
			GatewayCustomerID:     c.customer.GatewayCustomerID,
			Status:                entities.SubscriptionStatusActive,
			CurrentPeriodStart:    now.Unix(),
			CurrentPeriodEnd:      periodEnd(now, p.plan.Interval, p.plan.IntervalCount).Unix(),
		},
	}
	g.store.subscriptions[s.subscription.GatewaySubscriptionID] = s

	c.invoices = append(c.invoices, entities.Invoice{
		Created:          now.Unix(),
		AmountPaid:       p.plan.Amount,
		HostedInvoiceURL: "https://invoice.stripe.com/i/" + g.store.nextID("in"),
		Currency:         p.plan.Currency,
	})
	return s.subscription, nil
}

func (g *FakeGateway) StopSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (entities.Subscription, error) {
	const op = "StopSubscription"
	subscriptionID, err := requireID(op, "subscription_id", subscriptionID)
	if err != nil {
		return entities.Subscription{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	s, ok := g.store.subscriptions[subscriptionID]
	if !ok || !g.visible(s.scope) {
		return entities.Subscription{}, interfaces.NotFound(op, "no such subscription: %s", subscriptionID)
	}
	if cancelAtPeriodEnd {
		s.subscription.CancelAtPeriodEnd = true
	} else {
		s.subscription.Status = entities.SubscriptionStatusCanceled
	}
	return s.subscription, nil
}

func (g *FakeGateway) GetAllOrganisationBankAccounts(ctx context.Context, account entities.ConnectAccount) ([]entities.BankAccount, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	a, err := g.account("GetAllOrganisationBankAccounts", account)
	if err != nil {
		return nil, err
	}
	return slices.Clone(a.bankAccounts), nil
}

func (a *fakeAccount) bankAccountIndex(id string) int {
	return slices.IndexFunc(a.bankAccounts, func(b entities.BankAccount) bool {
		return b.GatewayBankAccountID == id
	})
}

func (g *FakeGateway) GetOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.BankAccount, error) {
	const op = "GetOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.BankAccount{}, err
	}

	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}
	i := a.bankAccountIndex(bankAccountID)
	if i < 0 {
		return entities.BankAccount{}, interfaces.NotFound(op, "no such external account: %s", bankAccountID)
	}
	return a.bankAccounts[i], nil
}

func (g *FakeGateway) AddOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, token string) (entities.BankAccount, error) {
	const op = "AddOrganisationBankAccount"
	token, err := requireID(op, "token", token)
	if err != nil {
		return entities.BankAccount{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}
	b, ok := g.store.bankAccountForToken(token)
	if !ok {
		return entities.BankAccount{}, interfaces.NotFound(op, "no such token: %s", token)
	}
	b.GatewayBankAccountID = g.store.nextID("ba")
	b.DefaultForCurrency = !slices.ContainsFunc(a.bankAccounts, func(existing entities.BankAccount) bool {
		return existing.Currency == b.Currency && existing.DefaultForCurrency
	})
	a.bankAccounts = append(a.bankAccounts, b)
	return b, nil
}

// bankAccountForToken resolves bank tokens issued by CreateToken. Other
// "btok_" tokens stand for the Stripe AU test bank.
func (s *fakeStore) bankAccountForToken(token string) (entities.BankAccount, bool) {
	if t, ok := s.tokens[token]; ok {
		section, ok := t[entities.TokenTypeBankAccount].(map[string]any)
		if !ok {
			return entities.BankAccount{}, false
		}
		b := entities.BankAccount{}
		b.BankName, _ = section["bank_name"].(string)
		b.Country, _ = section["country"].(string)
		b.Currency, _ = section["currency"].(string)
		b.Last4, _ = section["last4"].(string)
		b.RoutingNumber, _ = section["routing_number"].(string)
		return b, true
	}
	if strings.HasPrefix(token, "btok_") {
		return entities.BankAccount{
			BankName:      "STRIPE TEST BANK",
			Country:       "AU",
			Currency:      "aud",
			Last4:         TestBankAccountNumberAU[len(TestBankAccountNumberAU)-4:],
			RoutingNumber: TestBankRoutingNumberAU,
		}, true
	}
	return entities.BankAccount{}, false
}

func (g *FakeGateway) RemoveOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.DeletedBankAccount, error) {
	const op = "RemoveOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.DeletedBankAccount{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.DeletedBankAccount{}, err
	}
	i := a.bankAccountIndex(bankAccountID)
	if i < 0 {
		return entities.DeletedBankAccount{}, interfaces.NotFound(op, "no such external account: %s", bankAccountID)
	}
	a.bankAccounts = slices.Delete(a.bankAccounts, i, i+1)
	return entities.DeletedBankAccount{GatewayBankAccountID: bankAccountID, Deleted: true}, nil
}

func (g *FakeGateway) SetDefaultOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string, defaultForCurrency bool) (entities.BankAccount, error) {
	const op = "SetDefaultOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.BankAccount{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}
	i := a.bankAccountIndex(bankAccountID)
	if i < 0 {
		return entities.BankAccount{}, interfaces.NotFound(op, "no such external account: %s", bankAccountID)
	}
	if defaultForCurrency {
		for j := range a.bankAccounts {
			if a.bankAccounts[j].Currency == a.bankAccounts[i].Currency {
				a.bankAccounts[j].DefaultForCurrency = false
			}
		}
	}
	a.bankAccounts[i].DefaultForCurrency = defaultForCurrency
	return a.bankAccounts[i], nil
}

func (g *FakeGateway) GetVerificationInformation(ctx context.Context, account entities.ConnectAccount) (entities.Verification, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	a, err := g.account("GetVerificationInformation", account)
	if err != nil {
		return entities.Verification{}, err
	}
	return copyVerification(a.verification), nil
}

// SaveVerificationInformation stores the details and reports the account as
// verified, the way Stripe test mode accepts its test identities.
func (g *FakeGateway) SaveVerificationInformation(ctx context.Context, account entities.ConnectAccount, details entities.VerificationDetails) (entities.Verification, error) {
	const op = "SaveVerificationInformation"
	if err := validateInput(op, details); err != nil {
		return entities.Verification{}, err
	}
	dob, err := ParseDateOfBirth(op, details.DateOfBirth)
	if err != nil {
		return entities.Verification{}, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	a, err := g.account(op, account)
	if err != nil {
		return entities.Verification{}, err
	}
	verified := true
	a.verification = entities.Verification{
		PayoutsEnabled: true,
		Verified:       &verified,
		Address:        details.Address,
		FirstName:      details.FirstName,
		LastName:       details.LastName,
		DateOfBirth:    &dob,
	}
	a.account.PayoutsEnabled = true
	return copyVerification(a.verification), nil
}

func (g *FakeGateway) GetCustomerPaymentMethods(ctx context.Context, user entities.User) ([]entities.PaymentMethod, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	c, err := g.customer("GetCustomerPaymentMethods", user)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.customer.PaymentMethods), nil
}

func (g *FakeGateway) RemoveCustomerPaymentMethod(ctx context.Context, user entities.User, paymentMethodID string) ([]entities.PaymentMethod, error) {
	const op = "RemoveCustomerPaymentMethod"
	paymentMethodID, err := requireID(op, "payment_method_id", paymentMethodID)
	if err != nil {
		return nil, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, err := g.customer(op, user)
	if err != nil {
		return nil, err
	}
	c.customer.PaymentMethods = slices.DeleteFunc(c.customer.PaymentMethods, func(m entities.PaymentMethod) bool {
		return m.GatewayMethodID == paymentMethodID
	})
	if c.customer.DefaultPaymentMethodID == paymentMethodID {
		c.customer.DefaultPaymentMethodID = ""
	}
	return slices.Clone(c.customer.PaymentMethods), nil
}

func (g *FakeGateway) GetAccountBalance(ctx context.Context, account entities.ConnectAccount) (entities.Balance, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	a, err := g.account("GetAccountBalance", account)
	if err != nil {
		return entities.Balance{}, err
	}
	return copyBalance(a.balance), nil
}

func (g *FakeGateway) GetInvoices(ctx context.Context, user entities.User) ([]entities.Invoice, error) {
	g.store.mu.RLock()
	defer g.store.mu.RUnlock()

	c, err := g.customer("GetInvoices", user)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(c.invoices)
	if out == nil {
		out = []entities.Invoice{}
	}
	return out, nil
}

// CreateToken issues a token shaped like the one Stripe returns for the
// requested type. The token can then be used with AddOrganisationBankAccount
// or SetCustomerDefaultPaymentMethod.
func (g *FakeGateway) CreateToken(ctx context.Context, details entities.TokenDetails) (entities.Token, error) {
	const op = "CreateToken"
	tokenType, ok := details.Type()
	if !ok {
		return nil, interfaces.ContractViolation(op, "token details need exactly one of %q or %q", entities.TokenTypeBankAccount, entities.TokenTypeCard)
	}
	section := details.Section(tokenType)
	if section == nil {
		return nil, interfaces.ContractViolation(op, "%s details must be an object", tokenType)
	}

	var country string
	if tokenType == entities.TokenTypeBankAccount {
		var err error
		if country, err = ResolveCountry(detailString(section, "country")); err != nil {
			return nil, err
		}
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	token := entities.Token{
		"object":    "token",
		"type":      tokenType,
		"client_ip": "127.0.0.1",
		"created":   g.opts.Now().UTC().Unix(),
		"livemode":  false,
		"used":      false,
	}
	switch tokenType {
	case entities.TokenTypeBankAccount:
		token["id"] = g.store.nextID("btok")
		token[entities.TokenTypeBankAccount] = map[string]any{
			"id":                  g.store.nextID("ba"),
			"object":              "bank_account",
			"account_holder_name": detailString(section, "account_holder_name"),
			"bank_name":           "STRIPE TEST BANK",
			"country":             country,
			"currency":            normalizeCurrency(detailString(section, "currency")),
			"last4":               lastFour(detailString(section, "account_number"), "3456"),
			"routing_number":      detailString(section, "routing_number"),
			"status":              "new",
		}
	case entities.TokenTypeCard:
		number := detailString(section, "number")
		expMonth, _ := strconv.ParseInt(detailString(section, "exp_month"), 10, 64)
		expYear, _ := strconv.ParseInt(detailString(section, "exp_year"), 10, 64)
		token["id"] = g.store.nextID("tok")
		token[entities.TokenTypeCard] = map[string]any{
			"id":        g.store.nextID("card"),
			"object":    "card",
			"brand":     string(brandForNumber(number)),
			"country":   "US",
			"exp_month": expMonth,
			"exp_year":  expYear,
			"last4":     lastFour(number, "4242"),
		}
	}
	g.store.tokens[token.ID()] = token
	return copyToken(token), nil
}

func periodEnd(start time.Time, interval string, count int64) time.Time {
	n := int(max(count, 1))
	switch interval {
	case "day":
		return start.AddDate(0, 0, n)
	case "week":
		return start.AddDate(0, 0, 7*n)
	case "year":
		return start.AddDate(n, 0, 0)
	default:
		return start.AddDate(0, n, 0)
	}
}

func brandForNumber(number string) entities.CardBrand {
	switch {
	case strings.HasPrefix(number, "4"):
		return entities.CardBrandVisa
	case strings.HasPrefix(number, "5"), strings.HasPrefix(number, "2"):
		return entities.CardBrandMastercard
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return entities.CardBrandAmericanExpress
	case strings.HasPrefix(number, "6"):
		return entities.CardBrandDiscover
	default:
		return entities.CardBrandUnknown
	}
}

func lastFour(s, fallback string) string {
	if len(s) < 4 {
		return fallback
	}
	return s[len(s)-4:]
}

func copyCustomer(c entities.Customer) entities.Customer {
	c.PaymentMethods = slices.Clone(c.PaymentMethods)
	if c.PaymentMethods == nil {
		c.PaymentMethods = []entities.PaymentMethod{}
	}
	return c
}

func copyVerification(v entities.Verification) entities.Verification {
	if v.Verified != nil {
		verified := *v.Verified
		v.Verified = &verified
	}
	if v.DisabledReason != nil {
		reason := *v.DisabledReason
		v.DisabledReason = &reason
	}
	if v.DateOfBirth != nil {
		dob := *v.DateOfBirth
		v.DateOfBirth = &dob
	}
	return v
}

func copyBalance(b entities.Balance) entities.Balance {
	clone := func(in []entities.BalanceAmount) []entities.BalanceAmount {
		out := make([]entities.BalanceAmount, 0, len(in))
		for _, a := range in {
			a.Breakdown = maps.Clone(a.Breakdown)
			out = append(out, a)
		}
		return out
	}
	return entities.Balance{Available: clone(b.Available), Pending: clone(b.Pending)}
}

func copyToken(t entities.Token) entities.Token {
	out := maps.Clone(t)
	for _, key := range []string{entities.TokenTypeBankAccount, entities.TokenTypeCard} {
		if section, ok := out[key].(map[string]any); ok {
			out[key] = maps.Clone(section)
		}
	}
	return out
}
