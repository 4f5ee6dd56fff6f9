package interfaces

import (
	"context"

	"financier/internal/domain/entities"
)

// IPaymentGateway abstracts the payment processor behind canonical records.
//
// Implementations:
//   - payments.StripeGateway talks to Stripe and normalizes every response.
//   - payments.FakeGateway serves deterministic in-memory data for tests and local runs.
//
// Both must be interchangeable: same record shapes, same error kinds
// (ErrNotFound, ErrContractViolation, ErrResolution, ErrTransport).
//
// Organisation scope is not mutable state. WithOrganisationAccountID returns a
// derived handle; the receiver is left untouched, so a base gateway can be
// shared across goroutines and scoped per request.
type IPaymentGateway interface {
	WithOrganisationAccountID(organisationAccountID string) IPaymentGateway
	OrganisationAccountID() string

	CreateCustomer(ctx context.Context, user entities.User) (entities.Customer, error)
	GetCustomer(ctx context.Context, user entities.User) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, user entities.User) (entities.Customer, error)

	CreateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error)
	GetOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error)
	UpdateOrganisationAccount(ctx context.Context, account entities.ConnectAccount) (entities.OrganisationAccount, error)

	CreateMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error)
	// DeleteMembershipPlan deactivates the plan; it is never physically removed.
	DeleteMembershipPlan(ctx context.Context, plan entities.MembershipType) (entities.MembershipPlan, error)

	SetCustomerDefaultPaymentMethod(ctx context.Context, user entities.User, token string) (entities.PaymentMethod, error)

	CreateSubscription(ctx context.Context, user entities.User, plan entities.MembershipType) (entities.Subscription, error)
	// StopSubscription ends the subscription at period close when cancelAtPeriodEnd
	// is true, immediately otherwise.
	StopSubscription(ctx context.Context, subscriptionID string, cancelAtPeriodEnd bool) (entities.Subscription, error)

	GetAllOrganisationBankAccounts(ctx context.Context, account entities.ConnectAccount) ([]entities.BankAccount, error)
	GetOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.BankAccount, error)
	AddOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, token string) (entities.BankAccount, error)
	RemoveOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string) (entities.DeletedBankAccount, error)
	SetDefaultOrganisationBankAccount(ctx context.Context, account entities.ConnectAccount, bankAccountID string, defaultForCurrency bool) (entities.BankAccount, error)

	GetVerificationInformation(ctx context.Context, account entities.ConnectAccount) (entities.Verification, error)
	SaveVerificationInformation(ctx context.Context, account entities.ConnectAccount, details entities.VerificationDetails) (entities.Verification, error)

	GetCustomerPaymentMethods(ctx context.Context, user entities.User) ([]entities.PaymentMethod, error)
	// RemoveCustomerPaymentMethod returns the remaining methods. Removing an
	// unknown method is a no-op that returns the current set.
	RemoveCustomerPaymentMethod(ctx context.Context, user entities.User, paymentMethodID string) ([]entities.PaymentMethod, error)

	GetAccountBalance(ctx context.Context, account entities.ConnectAccount) (entities.Balance, error)
	GetInvoices(ctx context.Context, user entities.User) ([]entities.Invoice, error)

	// CreateToken issues a test/dev token. Not for production money movement.
	CreateToken(ctx context.Context, details entities.TokenDetails) (entities.Token, error)
}
