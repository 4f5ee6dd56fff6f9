package usecase

//go:generate mockgen -source=billing_usecase.go -destination=../adapter/http/handlers/mocks/mock_billing_usecase.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidUserID             = errors.New("invalid user_id")
	ErrInvalidOrganisationID     = errors.New("invalid organisation_id")
	ErrInvalidPlanID             = errors.New("invalid gateway_plan_id")
	ErrInvalidSubscriptionID     = errors.New("invalid subscription_id")
	ErrInvalidToken              = errors.New("invalid token")
	ErrInvalidBankAccountID      = errors.New("invalid bank_account_id")
	ErrInvalidPaymentMethodID    = errors.New("invalid payment_method_id")
	ErrCustomerNotRegistered     = errors.New("customer not registered with the payment gateway")
	ErrOrganisationNotRegistered = errors.New("organisation not registered with the payment gateway")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// Attributes names the host attributes gateway ids are exposed under. They
// must match the names the gateway was configured with.
type Attributes struct {
	Customer string
	Account  string
}

func (a Attributes) withDefaults() Attributes {
	if strings.TrimSpace(a.Customer) == "" {
		a.Customer = entities.DefaultCustomerAttribute
	}
	if strings.TrimSpace(a.Account) == "" {
		a.Account = entities.DefaultAccountAttribute
	}
	return a
}

// IBillingUseCase drives the payment gateway on behalf of host users and
// organisations.
//
// Host records are not stored here. Only the gateway id assigned to each of
// them is remembered (as a GatewayLink) and rehydrated into the record's
// attributes before every gateway call.
//
// Scoping:
//   - a customer lives in the scope it was registered under (organisationID,
//     or the platform when empty); every later customer call reuses it
//   - organisation calls run scoped to the organisation's own gateway account
//   - plans, subscriptions and tokens take the organisation explicitly
type IBillingUseCase interface {
	RegisterCustomer(ctx context.Context, organisationID string, user entities.User) (entities.Customer, error)
	GetCustomer(ctx context.Context, userID string) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, user entities.User) (entities.Customer, error)
	SetDefaultPaymentMethod(ctx context.Context, userID, token string) (entities.PaymentMethod, error)
	GetPaymentMethods(ctx context.Context, userID string) ([]entities.PaymentMethod, error)
	RemovePaymentMethod(ctx context.Context, userID, paymentMethodID string) ([]entities.PaymentMethod, error)
	GetInvoices(ctx context.Context, userID string) ([]entities.Invoice, error)

	RegisterOrganisation(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error)
	GetOrganisation(ctx context.Context, organisationID string) (entities.OrganisationAccount, error)
	UpdateOrganisation(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error)
	ListBankAccounts(ctx context.Context, organisationID string) ([]entities.BankAccount, error)
	GetBankAccount(ctx context.Context, organisationID, bankAccountID string) (entities.BankAccount, error)
	AddBankAccount(ctx context.Context, organisationID, token string) (entities.BankAccount, error)
	RemoveBankAccount(ctx context.Context, organisationID, bankAccountID string) (entities.DeletedBankAccount, error)
	SetDefaultBankAccount(ctx context.Context, organisationID, bankAccountID string, defaultForCurrency bool) (entities.BankAccount, error)
	GetVerification(ctx context.Context, organisationID string) (entities.Verification, error)
	SaveVerification(ctx context.Context, organisationID string, details entities.VerificationDetails) (entities.Verification, error)
	GetBalance(ctx context.Context, organisationID string) (entities.Balance, error)

	CreatePlan(ctx context.Context, organisationID string, plan entities.MembershipType) (entities.MembershipPlan, error)
	DeletePlan(ctx context.Context, organisationID, planID string) (entities.MembershipPlan, error)
	Subscribe(ctx context.Context, userID string, plan entities.MembershipType) (entities.Subscription, error)
	StopSubscription(ctx context.Context, organisationID, subscriptionID string, atPeriodEnd bool) (entities.Subscription, error)

	CreateToken(ctx context.Context, organisationID string, details entities.TokenDetails) (entities.Token, error)
}

type BillingUseCase struct {
	links   interfaces.IGatewayLinkRepository
	gateway interfaces.IPaymentGateway
	attrs   Attributes
	log     logrus.FieldLogger
	now     func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

// NewBillingUseCase wires the use case. A nil log discards output.
func NewBillingUseCase(links interfaces.IGatewayLinkRepository, gateway interfaces.IPaymentGateway, attrs Attributes, log logrus.FieldLogger) *BillingUseCase {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &BillingUseCase{
		links:   links,
		gateway: gateway,
		attrs:   attrs.withDefaults(),
		log:     log.WithField("component", "billing.usecase"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ---- customers ----

func (u *BillingUseCase) RegisterCustomer(ctx context.Context, organisationID string, user entities.User) (entities.Customer, error) {
	user.ID = strings.TrimSpace(user.ID)
	log := u.log.WithFields(logrus.Fields{"user_id": user.ID, "organisation_id": organisationID})
	log.Info("register customer start")
	if user.ID == "" {
		log.Warn("invalid user_id (empty)")
		return entities.Customer{}, ErrInvalidUserID
	}
	if err := u.ready(); err != nil {
		return entities.Customer{}, err
	}

	gateway, scope, err := u.scope(ctx, organisationID)
	if err != nil {
		log.WithError(err).Warn("resolving organisation scope failed")
		return entities.Customer{}, err
	}

	link, err := u.links.Get(ctx, entities.GatewayLinkOwnerUser, user.ID)
	if err != nil {
		log.WithError(err).Error("loading gateway link failed")
		return entities.Customer{}, err
	}
	if link.GatewayID != "" {
		if link.OrganisationAccountID != scope {
			log.WithField("registered_scope", link.OrganisationAccountID).Info("customer registered under another scope; re-registering")
		} else {
			existing, err := gateway.GetCustomer(ctx, user.WithAttribute(u.attrs.Customer, link.GatewayID))
			switch {
			case err == nil:
				log.WithField("customer_id", existing.GatewayCustomerID).Info("register customer success (already registered)")
				return existing, nil
			case !errors.Is(err, interfaces.ErrNotFound):
				log.WithError(err).Error("refreshing registered customer failed")
				return entities.Customer{}, err
			}
			log.WithField("customer_id", link.GatewayID).Warn("registered customer is gone; dropping stale link")
		}
		if err := u.links.Delete(ctx, entities.GatewayLinkOwnerUser, user.ID); err != nil {
			log.WithError(err).Error("deleting stale gateway link failed")
			return entities.Customer{}, err
		}
	}

	created, err := gateway.CreateCustomer(ctx, user)
	if err != nil {
		log.WithError(err).Error("create customer failed")
		return entities.Customer{}, err
	}
	if _, err := u.saveLink(ctx, entities.GatewayLinkOwnerUser, user.ID, u.attrs.Customer, created.GatewayCustomerID, scope); err != nil {
		log.WithError(err).Error("saving gateway link failed")
		return entities.Customer{}, err
	}
	log.WithField("customer_id", created.GatewayCustomerID).Info("register customer success")
	return created, nil
}

func (u *BillingUseCase) GetCustomer(ctx context.Context, userID string) (entities.Customer, error) {
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return entities.Customer{}, err
	}
	c, err := gateway.GetCustomer(ctx, user)
	if err != nil {
		u.log.WithError(err).WithField("user_id", user.ID).Error("get customer failed")
		return entities.Customer{}, err
	}
	return c, nil
}

func (u *BillingUseCase) UpdateCustomer(ctx context.Context, user entities.User) (entities.Customer, error) {
	gateway, user, err := u.customer(ctx, user)
	if err != nil {
		return entities.Customer{}, err
	}
	log := u.log.WithField("user_id", user.ID)
	log.Info("update customer start")
	c, err := gateway.UpdateCustomer(ctx, user)
	if err != nil {
		log.WithError(err).Error("update customer failed")
		return entities.Customer{}, err
	}
	log.Info("update customer success")
	return c, nil
}

func (u *BillingUseCase) SetDefaultPaymentMethod(ctx context.Context, userID, token string) (entities.PaymentMethod, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.PaymentMethod{}, ErrInvalidToken
	}
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	log := u.log.WithField("user_id", user.ID)
	log.Info("set default payment method start")
	m, err := gateway.SetCustomerDefaultPaymentMethod(ctx, user, token)
	if err != nil {
		log.WithError(err).Error("set default payment method failed")
		return entities.PaymentMethod{}, err
	}
	log.WithField("payment_method_id", m.GatewayMethodID).Info("set default payment method success")
	return m, nil
}

func (u *BillingUseCase) GetPaymentMethods(ctx context.Context, userID string) ([]entities.PaymentMethod, error) {
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return nil, err
	}
	methods, err := gateway.GetCustomerPaymentMethods(ctx, user)
	if err != nil {
		u.log.WithError(err).WithField("user_id", user.ID).Error("get payment methods failed")
		return nil, err
	}
	return methods, nil
}

func (u *BillingUseCase) RemovePaymentMethod(ctx context.Context, userID, paymentMethodID string) ([]entities.PaymentMethod, error) {
	paymentMethodID = strings.TrimSpace(paymentMethodID)
	if paymentMethodID == "" {
		return nil, ErrInvalidPaymentMethodID
	}
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return nil, err
	}
	log := u.log.WithFields(logrus.Fields{"user_id": user.ID, "payment_method_id": paymentMethodID})
	log.Info("remove payment method start")
	remaining, err := gateway.RemoveCustomerPaymentMethod(ctx, user, paymentMethodID)
	if err != nil {
		log.WithError(err).Error("remove payment method failed")
		return nil, err
	}
	log.WithField("remaining", len(remaining)).Info("remove payment method success")
	return remaining, nil
}

func (u *BillingUseCase) GetInvoices(ctx context.Context, userID string) ([]entities.Invoice, error) {
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return nil, err
	}
	invoices, err := gateway.GetInvoices(ctx, user)
	if err != nil {
		u.log.WithError(err).WithField("user_id", user.ID).Error("get invoices failed")
		return nil, err
	}
	return invoices, nil
}

// ---- organisations ----

func (u *BillingUseCase) RegisterOrganisation(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	account.ID = strings.TrimSpace(account.ID)
	log := u.log.WithField("organisation_id", account.ID)
	log.Info("register organisation start")
	if account.ID == "" {
		log.Warn("invalid organisation_id (empty)")
		return entities.OrganisationAccount{}, ErrInvalidOrganisationID
	}
	if err := u.ready(); err != nil {
		return entities.OrganisationAccount{}, err
	}

	link, err := u.links.Get(ctx, entities.GatewayLinkOwnerOrganisation, account.ID)
	if err != nil {
		log.WithError(err).Error("loading gateway link failed")
		return entities.OrganisationAccount{}, err
	}
	if link.GatewayID != "" {
		existing, err := u.gateway.WithOrganisationAccountID(link.GatewayID).
			GetOrganisationAccount(ctx, account.WithAttribute(u.attrs.Account, link.GatewayID))
		switch {
		case err == nil:
			log.WithField("account_id", existing.GatewayAccountID).Info("register organisation success (already registered)")
			return existing, nil
		case !errors.Is(err, interfaces.ErrNotFound):
			log.WithError(err).Error("refreshing registered organisation failed")
			return entities.OrganisationAccount{}, err
		}
		log.WithField("account_id", link.GatewayID).Warn("registered account is gone; dropping stale link")
		if err := u.links.Delete(ctx, entities.GatewayLinkOwnerOrganisation, account.ID); err != nil {
			log.WithError(err).Error("deleting stale gateway link failed")
			return entities.OrganisationAccount{}, err
		}
	}

	created, err := u.gateway.CreateOrganisationAccount(ctx, account)
	if err != nil {
		log.WithError(err).Error("create organisation account failed")
		return entities.OrganisationAccount{}, err
	}
	if _, err := u.saveLink(ctx, entities.GatewayLinkOwnerOrganisation, account.ID, u.attrs.Account, created.GatewayAccountID, created.GatewayAccountID); err != nil {
		log.WithError(err).Error("saving gateway link failed")
		return entities.OrganisationAccount{}, err
	}
	log.WithField("account_id", created.GatewayAccountID).Info("register organisation success")
	return created, nil
}

func (u *BillingUseCase) GetOrganisation(ctx context.Context, organisationID string) (entities.OrganisationAccount, error) {
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.OrganisationAccount{}, err
	}
	out, err := gateway.GetOrganisationAccount(ctx, account)
	if err != nil {
		u.log.WithError(err).WithField("organisation_id", account.ID).Error("get organisation failed")
		return entities.OrganisationAccount{}, err
	}
	return out, nil
}

func (u *BillingUseCase) UpdateOrganisation(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error) {
	gateway, account, err := u.organisation(ctx, account)
	if err != nil {
		return entities.OrganisationAccount{}, err
	}
	log := u.log.WithField("organisation_id", account.ID)
	log.Info("update organisation start")
	out, err := gateway.UpdateOrganisationAccount(ctx, account)
	if err != nil {
		log.WithError(err).Error("update organisation failed")
		return entities.OrganisationAccount{}, err
	}
	log.Info("update organisation success")
	return out, nil
}

func (u *BillingUseCase) ListBankAccounts(ctx context.Context, organisationID string) ([]entities.BankAccount, error) {
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return nil, err
	}
	out, err := gateway.GetAllOrganisationBankAccounts(ctx, account)
	if err != nil {
		u.log.WithError(err).WithField("organisation_id", account.ID).Error("list bank accounts failed")
		return nil, err
	}
	return out, nil
}

func (u *BillingUseCase) GetBankAccount(ctx context.Context, organisationID, bankAccountID string) (entities.BankAccount, error) {
	bankAccountID = strings.TrimSpace(bankAccountID)
	if bankAccountID == "" {
		return entities.BankAccount{}, ErrInvalidBankAccountID
	}
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.BankAccount{}, err
	}
	out, err := gateway.GetOrganisationBankAccount(ctx, account, bankAccountID)
	if err != nil {
		u.log.WithError(err).WithFields(logrus.Fields{"organisation_id": account.ID, "bank_account_id": bankAccountID}).Error("get bank account failed")
		return entities.BankAccount{}, err
	}
	return out, nil
}

func (u *BillingUseCase) AddBankAccount(ctx context.Context, organisationID, token string) (entities.BankAccount, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.BankAccount{}, ErrInvalidToken
	}
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.BankAccount{}, err
	}
	log := u.log.WithField("organisation_id", account.ID)
	log.Info("add bank account start")
	out, err := gateway.AddOrganisationBankAccount(ctx, account, token)
	if err != nil {
		log.WithError(err).Error("add bank account failed")
		return entities.BankAccount{}, err
	}
	log.WithField("bank_account_id", out.GatewayBankAccountID).Info("add bank account success")
	return out, nil
}

func (u *BillingUseCase) RemoveBankAccount(ctx context.Context, organisationID, bankAccountID string) (entities.DeletedBankAccount, error) {
	bankAccountID = strings.TrimSpace(bankAccountID)
	if bankAccountID == "" {
		return entities.DeletedBankAccount{}, ErrInvalidBankAccountID
	}
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.DeletedBankAccount{}, err
	}
	log := u.log.WithFields(logrus.Fields{"organisation_id": account.ID, "bank_account_id": bankAccountID})
	log.Info("remove bank account start")
	out, err := gateway.RemoveOrganisationBankAccount(ctx, account, bankAccountID)
	if err != nil {
		log.WithError(err).Error("remove bank account failed")
		return entities.DeletedBankAccount{}, err
	}
	log.Info("remove bank account success")
	return out, nil
}

func (u *BillingUseCase) SetDefaultBankAccount(ctx context.Context, organisationID, bankAccountID string, defaultForCurrency bool) (entities.BankAccount, error) {
	bankAccountID = strings.TrimSpace(bankAccountID)
	if bankAccountID == "" {
		return entities.BankAccount{}, ErrInvalidBankAccountID
	}
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.BankAccount{}, err
	}
	log := u.log.WithFields(logrus.Fields{"organisation_id": account.ID, "bank_account_id": bankAccountID, "default_for_currency": defaultForCurrency})
	log.Info("set default bank account start")
	out, err := gateway.SetDefaultOrganisationBankAccount(ctx, account, bankAccountID, defaultForCurrency)
	if err != nil {
		log.WithError(err).Error("set default bank account failed")
		return entities.BankAccount{}, err
	}
	log.Info("set default bank account success")
	return out, nil
}

func (u *BillingUseCase) GetVerification(ctx context.Context, organisationID string) (entities.Verification, error) {
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.Verification{}, err
	}
	out, err := gateway.GetVerificationInformation(ctx, account)
	if err != nil {
		u.log.WithError(err).WithField("organisation_id", account.ID).Error("get verification failed")
		return entities.Verification{}, err
	}
	return out, nil
}

func (u *BillingUseCase) SaveVerification(ctx context.Context, organisationID string, details entities.VerificationDetails) (entities.Verification, error) {
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.Verification{}, err
	}
	// Personal details stay out of the logs.
	log := u.log.WithField("organisation_id", account.ID)
	log.Info("save verification start")
	out, err := gateway.SaveVerificationInformation(ctx, account, details)
	if err != nil {
		log.WithError(err).Error("save verification failed")
		return entities.Verification{}, err
	}
	log.WithField("payouts_enabled", out.PayoutsEnabled).Info("save verification success")
	return out, nil
}

func (u *BillingUseCase) GetBalance(ctx context.Context, organisationID string) (entities.Balance, error) {
	gateway, account, err := u.organisation(ctx, entities.ConnectAccount{ID: organisationID})
	if err != nil {
		return entities.Balance{}, err
	}
	out, err := gateway.GetAccountBalance(ctx, account)
	if err != nil {
		u.log.WithError(err).WithField("organisation_id", account.ID).Error("get balance failed")
		return entities.Balance{}, err
	}
	return out, nil
}

// ---- plans and subscriptions ----

func (u *BillingUseCase) CreatePlan(ctx context.Context, organisationID string, plan entities.MembershipType) (entities.MembershipPlan, error) {
	if err := u.ready(); err != nil {
		return entities.MembershipPlan{}, err
	}
	gateway, scope, err := u.scope(ctx, organisationID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	log := u.log.WithFields(logrus.Fields{"organisation_account_id": scope, "plan": plan.Name})
	log.Info("create plan start")
	out, err := gateway.CreateMembershipPlan(ctx, plan)
	if err != nil {
		log.WithError(err).Error("create plan failed")
		return entities.MembershipPlan{}, err
	}
	log.WithField("plan_id", out.GatewayPlanID).Info("create plan success")
	return out, nil
}

func (u *BillingUseCase) DeletePlan(ctx context.Context, organisationID, planID string) (entities.MembershipPlan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.MembershipPlan{}, ErrInvalidPlanID
	}
	if err := u.ready(); err != nil {
		return entities.MembershipPlan{}, err
	}
	gateway, scope, err := u.scope(ctx, organisationID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	log := u.log.WithFields(logrus.Fields{"organisation_account_id": scope, "plan_id": planID})
	log.Info("delete plan start")
	out, err := gateway.DeleteMembershipPlan(ctx, entities.MembershipType{GatewayPlanID: planID})
	if err != nil {
		log.WithError(err).Error("delete plan failed")
		return entities.MembershipPlan{}, err
	}
	log.Info("delete plan success")
	return out, nil
}

// Subscribe runs in the scope the customer was registered under, so the plan
// must belong to the same organisation.
func (u *BillingUseCase) Subscribe(ctx context.Context, userID string, plan entities.MembershipType) (entities.Subscription, error) {
	plan.GatewayPlanID = strings.TrimSpace(plan.GatewayPlanID)
	if plan.GatewayPlanID == "" {
		return entities.Subscription{}, ErrInvalidPlanID
	}
	gateway, user, err := u.customer(ctx, entities.User{ID: userID})
	if err != nil {
		return entities.Subscription{}, err
	}
	log := u.log.WithFields(logrus.Fields{"user_id": user.ID, "plan_id": plan.GatewayPlanID})
	log.Info("subscribe start")
	out, err := gateway.CreateSubscription(ctx, user, plan)
	if err != nil {
		log.WithError(err).Error("subscribe failed")
		return entities.Subscription{}, err
	}
	log.WithField("subscription_id", out.GatewaySubscriptionID).Info("subscribe success")
	return out, nil
}

func (u *BillingUseCase) StopSubscription(ctx context.Context, organisationID, subscriptionID string, atPeriodEnd bool) (entities.Subscription, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionID
	}
	if err := u.ready(); err != nil {
		return entities.Subscription{}, err
	}
	gateway, _, err := u.scope(ctx, organisationID)
	if err != nil {
		return entities.Subscription{}, err
	}
	log := u.log.WithFields(logrus.Fields{"subscription_id": subscriptionID, "at_period_end": atPeriodEnd})
	log.Info("stop subscription start")
	out, err := gateway.StopSubscription(ctx, subscriptionID, atPeriodEnd)
	if err != nil {
		log.WithError(err).Error("stop subscription failed")
		return entities.Subscription{}, err
	}
	log.Info("stop subscription success")
	return out, nil
}

func (u *BillingUseCase) CreateToken(ctx context.Context, organisationID string, details entities.TokenDetails) (entities.Token, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	gateway, _, err := u.scope(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	tokenType, _ := details.Type()
	log := u.log.WithField("token_type", tokenType)
	token, err := gateway.CreateToken(ctx, details)
	if err != nil {
		log.WithError(err).Warn("create token failed")
		return nil, err
	}
	log.WithField("token_id", token.ID()).Info("create token success")
	return token, nil
}

// ---- helpers ----

func (u *BillingUseCase) ready() error {
	if u.gateway == nil || u.links == nil {
		u.log.Error("payment gateway or link repository not configured")
		return ErrPaymentGatewayUnavailable
	}
	return nil
}

// scope resolves an organisation to a gateway handle scoped to its account.
// An empty organisationID means the platform itself.
func (u *BillingUseCase) scope(ctx context.Context, organisationID string) (interfaces.IPaymentGateway, string, error) {
	organisationID = strings.TrimSpace(organisationID)
	if organisationID == "" {
		return u.gateway, "", nil
	}
	link, err := u.links.Get(ctx, entities.GatewayLinkOwnerOrganisation, organisationID)
	if err != nil {
		return nil, "", err
	}
	if link.GatewayID == "" {
		return nil, "", ErrOrganisationNotRegistered
	}
	return u.gateway.WithOrganisationAccountID(link.GatewayID), link.GatewayID, nil
}

// customer rehydrates the gateway customer id into user and returns a handle
// in the scope the customer was registered under.
func (u *BillingUseCase) customer(ctx context.Context, user entities.User) (interfaces.IPaymentGateway, entities.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" {
		return nil, user, ErrInvalidUserID
	}
	if err := u.ready(); err != nil {
		return nil, user, err
	}
	link, err := u.links.Get(ctx, entities.GatewayLinkOwnerUser, user.ID)
	if err != nil {
		u.log.WithError(err).WithField("user_id", user.ID).Error("loading gateway link failed")
		return nil, user, err
	}
	if link.GatewayID == "" {
		return nil, user, ErrCustomerNotRegistered
	}
	attribute := link.Attribute
	if attribute == "" {
		attribute = u.attrs.Customer
	}
	return u.gateway.WithOrganisationAccountID(link.OrganisationAccountID), user.WithAttribute(attribute, link.GatewayID), nil
}

// organisation rehydrates the gateway account id into account and returns a
// handle scoped to that account.
func (u *BillingUseCase) organisation(ctx context.Context, account entities.ConnectAccount) (interfaces.IPaymentGateway, entities.ConnectAccount, error) {
	account.ID = strings.TrimSpace(account.ID)
	if account.ID == "" {
		return nil, account, ErrInvalidOrganisationID
	}
	if err := u.ready(); err != nil {
		return nil, account, err
	}
	link, err := u.links.Get(ctx, entities.GatewayLinkOwnerOrganisation, account.ID)
	if err != nil {
		u.log.WithError(err).WithField("organisation_id", account.ID).Error("loading gateway link failed")
		return nil, account, err
	}
	if link.GatewayID == "" {
		return nil, account, ErrOrganisationNotRegistered
	}
	attribute := link.Attribute
	if attribute == "" {
		attribute = u.attrs.Account
	}
	return u.gateway.WithOrganisationAccountID(link.GatewayID), account.WithAttribute(attribute, link.GatewayID), nil
}

func (u *BillingUseCase) saveLink(ctx context.Context, owner entities.GatewayLinkOwner, ownerID, attribute, gatewayID, scope string) (entities.GatewayLink, error) {
	now := u.now()
	return u.links.Save(ctx, entities.GatewayLink{
		ID:                    entities.GatewayLinkID(owner, ownerID),
		OwnerType:             owner,
		OwnerID:               ownerID,
		Attribute:             attribute,
		GatewayID:             gatewayID,
		OrganisationAccountID: scope,
		CreatedAt:             now,
		UpdatedAt:             now,
	})
}
