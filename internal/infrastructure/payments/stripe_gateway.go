package payments

import (
	"context"
	"fmt"
	"strings"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
)

// Stripe test fixtures usable against a test-mode key.
const (
	TestBankRoutingNumberAU = "110000"
	TestBankAccountNumberAU = "000123456"
	TestTokenVisa           = "tok_visa"
	TestTokenMastercard     = "tok_mastercard"
)

const (
	payoutInterval      = "monthly"
	payoutMonthlyAnchor = 4
	bankAccountPageSize = 100
)

// StripeGateway implements IPaymentGateway on top of Stripe Connect.
//
// Customers, payment methods, plans, subscriptions, invoices, bank accounts
// and tokens run on behalf of the handle's organisation account when one is
// set. Connected-account lifecycle and verification are platform calls.
type StripeGateway struct {
	api    StripeAPI
	opts   Options
	scope  string
	newKey func() string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(apiKey string, opts Options) (*StripeGateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingStripeSecretKey
	}
	return NewStripeGatewayWithAPI(NewStripeAPI(apiKey, opts.Observe), opts), nil
}

// NewStripeGatewayWithAPI builds a gateway over any StripeAPI implementation.
func NewStripeGatewayWithAPI(api StripeAPI, opts Options) *StripeGateway {
	return &StripeGateway{api: api, opts: opts.withDefaults(), newKey: uuid.NewString}
}

func (g *StripeGateway) WithOrganisationAccountID(organisationAccountID string) interfaces.IPaymentGateway {
	scoped := *g
	scoped.scope = strings.TrimSpace(organisationAccountID)
	return &scoped
}

func (g *StripeGateway) OrganisationAccountID() string {
	return g.scope
}

func (g *StripeGateway) onBehalf(ctx context.Context, p *stripe.Params) {
	p.Context = ctx
	if g.scope != "" {
		p.SetStripeAccount(g.scope)
	}
}

func (g *StripeGateway) onBehalfList(ctx context.Context, p *stripe.ListParams) {
	p.Context = ctx
	if g.scope != "" {
		p.SetStripeAccount(g.scope)
	}
}

func (g *StripeGateway) idempotent(p *stripe.Params) {
	p.SetIdempotencyKey(g.newKey())
}

func (g *StripeGateway) customerParams(ctx context.Context, user entities.User) *stripe.CustomerParams {
	params := &stripe.CustomerParams{
		Email:       stripe.String(user.Email),
		Name:        stripe.String(user.Name()),
		Description: stripe.String(user.ID),
	}
	params.AddMetadata("user_id", user.ID)
	if g.scope != "" {
		params.AddMetadata("org_id", g.scope)
	}
	params.AddExpand("sources")
	g.onBehalf(ctx, &params.Params)
	return params
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	const op = "CreateCustomer"
	if err := validateInput(op, user); err != nil {
		return entities.Customer{}, err
	}
	params := g.customerParams(ctx, user)
	g.idempotent(&params.Params)

	c, err := g.api.NewCustomer(params)
	if err != nil {
		return entities.Customer{}, stripeError(op, err)
	}
	return TranslateCustomer(c), nil
}

func (g *StripeGateway) GetCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	c, err := g.fetchCustomer(ctx, "GetCustomer", user)
	if err != nil {
		return entities.Customer{}, err
	}
	return TranslateCustomer(c), nil
}

func (g *StripeGateway) fetchCustomer(ctx context.Context, op string, user entities.User) (*stripe.Customer, error) {
	id, err := g.opts.customerID(op, user)
	if err != nil {
		return nil, err
	}
	params := &stripe.CustomerParams{}
	params.AddExpand("sources")
	g.onBehalf(ctx, &params.Params)

	c, err := g.api.GetCustomer(id, params)
	if err != nil {
		return nil, stripeError(op, err)
	}
	if c == nil || c.Deleted {
		return nil, interfaces.NotFound(op, "customer %s was deleted", id)
	}
	return c, nil
}

func (g *StripeGateway) UpdateCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	const op = "UpdateCustomer"
	if err := validateInput(op, user); err != nil {
		return entities.Customer{}, err
	}
	id, err := g.opts.customerID(op, user)
	if err != nil {
		return entities.Customer{}, err
	}

	c, err := g.api.UpdateCustomer(id, g.customerParams(ctx, user))
	if err != nil {
		return entities.Customer{}, stripeError(op, err)
	}
	return TranslateCustomer(c), nil
}

func (g *StripeGateway) CreateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	const op = "CreateOrganisationAccount"
	if err := validateInput(op, account); err != nil {
		return entities.OrganisationAccount{}, err
	}
	country, err := ResolveCountry(account.Country)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}

	params := &stripe.AccountParams{
		Type:            stripe.String(string(stripe.AccountTypeCustom)),
		BusinessType:    stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Country:         stripe.String(country),
		Email:           stripe.String(account.OwnerEmail),
		BusinessProfile: businessProfileParams(account),
		Settings: &stripe.AccountSettingsParams{
			Branding: brandingParams(account),
			Payouts: &stripe.AccountSettingsPayoutsParams{
				Schedule: &stripe.AccountSettingsPayoutsScheduleParams{
					Interval:      stripe.String(payoutInterval),
					MonthlyAnchor: stripe.Int64(payoutMonthlyAnchor),
				},
			},
		},
	}
	params.AddMetadata("connect_account_id", account.ID)
	params.Context = ctx
	g.idempotent(&params.Params)

	a, err := g.api.NewAccount(params)
	if err != nil {
		return entities.OrganisationAccount{}, stripeError(op, err)
	}
	return TranslateAccount(a), nil
}

func (g *StripeGateway) GetOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	a, err := g.fetchAccount(ctx, "GetOrganisationAccount", account)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}
	return TranslateAccount(a), nil
}

func (g *StripeGateway) fetchAccount(ctx context.Context, op string, account entities.ConnectAccount) (*stripe.Account, error) {
	id, err := g.opts.accountID(op, account)
	if err != nil {
		return nil, err
	}
	params := &stripe.AccountParams{}
	params.Context = ctx

	a, err := g.api.GetAccount(id, params)
	if err != nil {
		return nil, stripeError(op, err)
	}
	return a, nil
}

func (g *StripeGateway) UpdateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	const op = "UpdateOrganisationAccount"
	if err := validateInput(op, account); err != nil {
		return entities.OrganisationAccount{}, err
	}
	id, err := g.opts.accountID(op, account)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}

	params := &stripe.AccountParams{
		Email:           stripe.String(account.OwnerEmail),
		BusinessProfile: businessProfileParams(account),
	}
	if branding := brandingParams(account); branding != nil {
		params.Settings = &stripe.AccountSettingsParams{Branding: branding}
	}
	params.Context = ctx

	a, err := g.api.UpdateAccount(id, params)
	if err != nil {
		return entities.OrganisationAccount{}, stripeError(op, err)
	}
	return TranslateAccount(a), nil
}

func businessProfileParams(account entities.ConnectAccount) *stripe.AccountBusinessProfileParams {
	p := &stripe.AccountBusinessProfileParams{Name: stripe.String(account.LongName)}
	if account.ContactEmail != "" {
		p.SupportEmail = stripe.String(account.ContactEmail)
	}
	if account.ContactWebsite != "" {
		p.URL = stripe.String(account.ContactWebsite)
	}
	return p
}

func brandingParams(account entities.ConnectAccount) *stripe.AccountSettingsBrandingParams {
	if account.BrandingColor == "" {
		return nil
	}
	return &stripe.AccountSettingsBrandingParams{PrimaryColor: stripe.String(account.BrandingColor)}
}

func (g *StripeGateway) CreateMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error) {
	const op = "CreateMembershipPlan"
	if err := validateInput(op, plan); err != nil {
		return entities.MembershipPlan{}, err
	}

	params := &stripe.PlanParams{
		Active:        stripe.Bool(plan.IsActive()),
		Amount:        stripe.Int64(plan.Cost),
		Currency:      stripe.String(normalizeCurrency(plan.Currency)),
		Interval:      stripe.String(plan.Interval),
		IntervalCount: stripe.Int64(plan.IntervalCount),
		Product:       &stripe.PlanProductParams{Name: stripe.String(plan.Name)},
	}
	if plan.ID != "" {
		params.AddMetadata("membership_type_id", plan.ID)
	}
	g.onBehalf(ctx, &params.Params)
	g.idempotent(&params.Params)

	p, err := g.api.NewPlan(params)
	if err != nil {
		return entities.MembershipPlan{}, stripeError(op, err)
	}
	return TranslatePlan(p), nil
}

func (g *StripeGateway) DeleteMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error) {
	const op = "DeleteMembershipPlan"
	planID, err := requireID(op, "gateway_plan_id", plan.GatewayPlanID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}

	params := &stripe.PlanParams{Active: stripe.Bool(false)}
	g.onBehalf(ctx, &params.Params)

	p, err := g.api.UpdatePlan(planID, params)
	if err != nil {
		return entities.MembershipPlan{}, stripeError(op, err)
	}
	return TranslatePlan(p), nil
}

func (g *StripeGateway) SetCustomerDefaultPaymentMethod(ctx context.Context, user entities.User, token string) (entities.PaymentMethod, error) {
	const op = "SetCustomerDefaultPaymentMethod"
	customerID, err := g.opts.customerID(op, user)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	token, err = requireID(op, "token", token)
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	cardParams := &stripe.CardParams{Customer: stripe.String(customerID), Token: stripe.String(token)}
	g.onBehalf(ctx, &cardParams.Params)
	g.idempotent(&cardParams.Params)
	card, err := g.api.NewCard(cardParams)
	if err != nil {
		return entities.PaymentMethod{}, stripeError(op, err)
	}

	customerParams := &stripe.CustomerParams{DefaultSource: stripe.String(card.ID)}
	g.onBehalf(ctx, &customerParams.Params)
	if _, err := g.api.UpdateCustomer(customerID, customerParams); err != nil {
		return entities.PaymentMethod{}, stripeError(op, err)
	}

	method := TranslateCard(card)
	if method.GatewayCustomerID == "" {
		method.GatewayCustomerID = customerID
	}
	method.IsDefault = true
	return method, nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, user entities.User, plan entities.MembershipType) (entities.Subscription, error) {
	const op = "CreateSubscription"
	customerID, err := g.opts.customerID(op, user)
	if err != nil {
		return entities.Subscription{}, err
	}
	planID, err := requireID(op, "gateway_plan_id", plan.GatewayPlanID)
	if err != nil {
		return entities.Subscription{}, err
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items:    []*stripe.SubscriptionItemsParams{{Plan: stripe.String(planID)}},
	}
	if g.scope != "" {
		params.ApplicationFeePercent = stripe.Float64(0)
	}
	g.onBehalf(ctx, &params.Params)
	g.idempotent(&params.Params)

	s, err := g.api.NewSubscription(params)
	if err != nil {
		return entities.Subscription{}, stripeError(op, err)
	}
	return TranslateSubscription(s), nil
}

func (g *StripeGateway) StopSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (entities.Subscription, error) {
	const op = "StopSubscription"
	subscriptionID, err := requireID(op, "subscription_id", subscriptionID)
	if err != nil {
		return entities.Subscription{}, err
	}

	var s *stripe.Subscription
	if cancelAtPeriodEnd {
		params := &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)}
		g.onBehalf(ctx, &params.Params)
		s, err = g.api.UpdateSubscription(subscriptionID, params)
	} else {
		params := &stripe.SubscriptionCancelParams{}
		g.onBehalf(ctx, &params.Params)
		s, err = g.api.CancelSubscription(subscriptionID, params)
	}
	if err != nil {
		return entities.Subscription{}, stripeError(op, err)
	}
	return TranslateSubscription(s), nil
}

func (g *StripeGateway) GetAllOrganisationBankAccounts(ctx context.Context, account entities.ConnectAccount) ([]entities.BankAccount, error) {
	const op = "GetAllOrganisationBankAccounts"
	accountID, err := g.opts.accountID(op, account)
	if err != nil {
		return nil, err
	}

	params := &stripe.BankAccountListParams{Account: stripe.String(accountID)}
	params.Limit = stripe.Int64(bankAccountPageSize)
	params.Single = true
	g.onBehalfList(ctx, &params.ListParams)

	out, err := g.api.ListBankAccounts(params)
	if err != nil {
		return nil, stripeError(op, err)
	}
	return TranslateBankAccounts(out), nil
}

func (g *StripeGateway) bankAccountParams(ctx context.Context, op string, account entities.ConnectAccount) (*stripe.BankAccountParams, error) {
	accountID, err := g.opts.accountID(op, account)
	if err != nil {
		return nil, err
	}
	params := &stripe.BankAccountParams{Account: stripe.String(accountID)}
	g.onBehalf(ctx, &params.Params)
	return params, nil
}

func (g *StripeGateway) GetOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.BankAccount, error) {
	const op = "GetOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.BankAccount{}, err
	}
	params, err := g.bankAccountParams(ctx, op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}

	b, err := g.api.GetBankAccount(bankAccountID, params)
	if err != nil {
		return entities.BankAccount{}, stripeError(op, err)
	}
	return TranslateBankAccount(b), nil
}

func (g *StripeGateway) AddOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, token string) (entities.BankAccount, error) {
	const op = "AddOrganisationBankAccount"
	token, err := requireID(op, "token", token)
	if err != nil {
		return entities.BankAccount{}, err
	}
	params, err := g.bankAccountParams(ctx, op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}
	params.Token = stripe.String(token)
	g.idempotent(&params.Params)

	b, err := g.api.NewBankAccount(params)
	if err != nil {
		return entities.BankAccount{}, stripeError(op, err)
	}
	return TranslateBankAccount(b), nil
}

func (g *StripeGateway) RemoveOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.DeletedBankAccount, error) {
	const op = "RemoveOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.DeletedBankAccount{}, err
	}
	params, err := g.bankAccountParams(ctx, op, account)
	if err != nil {
		return entities.DeletedBankAccount{}, err
	}

	b, err := g.api.DeleteBankAccount(bankAccountID, params)
	if err != nil {
		return entities.DeletedBankAccount{}, stripeError(op, err)
	}
	out := TranslateDeletedBankAccount(b)
	if out.GatewayBankAccountID == "" {
		out.GatewayBankAccountID = bankAccountID
	}
	return out, nil
}

func (g *StripeGateway) SetDefaultOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string, defaultForCurrency bool) (entities.BankAccount, error) {
	const op = "SetDefaultOrganisationBankAccount"
	bankAccountID, err := requireID(op, "bank_account_id", bankAccountID)
	if err != nil {
		return entities.BankAccount{}, err
	}
	params, err := g.bankAccountParams(ctx, op, account)
	if err != nil {
		return entities.BankAccount{}, err
	}
	params.DefaultForCurrency = stripe.Bool(defaultForCurrency)

	b, err := g.api.UpdateBankAccount(bankAccountID, params)
	if err != nil {
		return entities.BankAccount{}, stripeError(op, err)
	}
	return TranslateBankAccount(b), nil
}

func (g *StripeGateway) GetVerificationInformation(ctx context.Context, account entities.ConnectAccount) (entities.Verification, error) {
	a, err := g.fetchAccount(ctx, "GetVerificationInformation", account)
	if err != nil {
		return entities.Verification{}, err
	}
	return TranslateVerification(a), nil
}

func (g *StripeGateway) SaveVerificationInformation(ctx context.Context, account entities.ConnectAccount, details entities.VerificationDetails) (entities.Verification, error) {
	const op = "SaveVerificationInformation"
	if err := validateInput(op, details); err != nil {
		return entities.Verification{}, err
	}
	id, err := g.opts.accountID(op, account)
	if err != nil {
		return entities.Verification{}, err
	}
	dob, err := ParseDateOfBirth(op, details.DateOfBirth)
	if err != nil {
		return entities.Verification{}, err
	}

	params := &stripe.AccountParams{
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Individual: &stripe.PersonParams{
			Address: &stripe.AddressParams{
				Line1:      stripe.String(details.Address.Line1),
				City:       stripe.String(details.Address.City),
				PostalCode: stripe.String(details.Address.PostalCode),
				State:      stripe.String(details.Address.State),
			},
			DOB: &stripe.PersonDOBParams{
				Day:   stripe.Int64(int64(dob.Day())),
				Month: stripe.Int64(int64(dob.Month())),
				Year:  stripe.Int64(int64(dob.Year())),
			},
			FirstName: stripe.String(details.FirstName),
			LastName:  stripe.String(details.LastName),
		},
	}
	if tos := details.TOSAcceptance; tos != nil {
		params.TOSAcceptance = &stripe.AccountTOSAcceptanceParams{
			Date: stripe.Int64(tos.Date),
			IP:   stripe.String(tos.IP),
		}
	}
	params.Context = ctx

	a, err := g.api.UpdateAccount(id, params)
	if err != nil {
		return entities.Verification{}, stripeError(op, err)
	}
	return TranslateVerification(a), nil
}

func (g *StripeGateway) GetCustomerPaymentMethods(ctx context.Context, user entities.User) ([]entities.PaymentMethod, error) {
	c, err := g.fetchCustomer(ctx, "GetCustomerPaymentMethods", user)
	if err != nil {
		return nil, err
	}
	return TranslatePaymentMethods(c), nil
}

// RemoveCustomerPaymentMethod detaches the card and returns what is left.
// A card Stripe no longer knows about is treated as already removed.
func (g *StripeGateway) RemoveCustomerPaymentMethod(ctx context.Context, user entities.User, paymentMethodID string) ([]entities.PaymentMethod, error) {
	const op = "RemoveCustomerPaymentMethod"
	customerID, err := g.opts.customerID(op, user)
	if err != nil {
		return nil, err
	}
	paymentMethodID, err = requireID(op, "payment_method_id", paymentMethodID)
	if err != nil {
		return nil, err
	}

	params := &stripe.CardParams{Customer: stripe.String(customerID)}
	g.onBehalf(ctx, &params.Params)
	if _, err := g.api.DeleteCard(paymentMethodID, params); err != nil && !isResourceMissing(err) {
		return nil, stripeError(op, err)
	}

	c, err := g.fetchCustomer(ctx, op, user)
	if err != nil {
		return nil, err
	}
	return TranslatePaymentMethods(c), nil
}

// GetAccountBalance always runs as the organisation account itself.
func (g *StripeGateway) GetAccountBalance(ctx context.Context, account entities.ConnectAccount) (entities.Balance, error) {
	const op = "GetAccountBalance"
	accountID, err := g.opts.accountID(op, account)
	if err != nil {
		return entities.Balance{}, err
	}

	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	b, err := g.api.GetBalance(params)
	if err != nil {
		return entities.Balance{}, stripeError(op, err)
	}
	return TranslateBalance(b), nil
}

func (g *StripeGateway) GetInvoices(ctx context.Context, user entities.User) ([]entities.Invoice, error) {
	const op = "GetInvoices"
	customerID, err := g.opts.customerID(op, user)
	if err != nil {
		return nil, err
	}

	params := &stripe.InvoiceListParams{Customer: stripe.String(customerID)}
	g.onBehalfList(ctx, &params.ListParams)

	out, err := g.api.ListInvoices(params)
	if err != nil {
		return nil, stripeError(op, err)
	}
	return TranslateInvoices(out), nil
}

func (g *StripeGateway) CreateToken(ctx context.Context, details entities.TokenDetails) (entities.Token, error) {
	const op = "CreateToken"
	tokenType, ok := details.Type()
	if !ok {
		return nil, interfaces.ContractViolation(op, "token details need exactly one of %q or %q", entities.TokenTypeBankAccount, entities.TokenTypeCard)
	}
	section := details.Section(tokenType)
	if section == nil {
		return nil, interfaces.ContractViolation(op, "%s details must be an object", tokenType)
	}

	params := &stripe.TokenParams{}
	switch tokenType {
	case entities.TokenTypeBankAccount:
		country, err := ResolveCountry(detailString(section, "country"))
		if err != nil {
			return nil, err
		}
		params.BankAccount = &stripe.BankAccountParams{
			Country:       stripe.String(country),
			Currency:      stripe.String(normalizeCurrency(detailString(section, "currency"))),
			RoutingNumber: optionalString(detailString(section, "routing_number")),
			AccountNumber: optionalString(detailString(section, "account_number")),
		}
		if name := detailString(section, "account_holder_name"); name != "" {
			params.BankAccount.AccountHolderName = stripe.String(name)
		}
		if kind := detailString(section, "account_holder_type"); kind != "" {
			params.BankAccount.AccountHolderType = stripe.String(kind)
		}
	case entities.TokenTypeCard:
		params.Card = &stripe.CardParams{
			Number:   optionalString(detailString(section, "number")),
			ExpMonth: optionalString(detailString(section, "exp_month")),
			ExpYear:  optionalString(detailString(section, "exp_year")),
			CVC:      optionalString(detailString(section, "cvc")),
		}
	}
	g.onBehalf(ctx, &params.Params)
	g.idempotent(&params.Params)

	t, err := g.api.NewToken(params)
	if err != nil {
		return nil, stripeError(op, err)
	}
	return TranslateToken(t), nil
}

// detailString renders a token detail value as text; JSON numbers arrive as float64.
func detailString(section map[string]any, key string) string {
	switch v := section[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return stripe.String(v)
}
