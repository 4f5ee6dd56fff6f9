package usecase

import (
	"context"
	"errors"
	"testing"

	"financier/internal/domain/entities"
	"financier/internal/usecase/interfaces"
	mock_interfaces "financier/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

type billingFixture struct {
	links   *mock_interfaces.MockIGatewayLinkRepository
	gateway *mock_interfaces.MockIPaymentGateway
	scoped  *mock_interfaces.MockIPaymentGateway
	uc      *BillingUseCase
}

func newBillingFixture(t *testing.T) billingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := billingFixture{
		links:   mock_interfaces.NewMockIGatewayLinkRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		scoped:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewBillingUseCase(f.links, f.gateway, Attributes{}, nil)
	return f
}

var (
	orgLink  = entities.GatewayLink{OwnerType: entities.GatewayLinkOwnerOrganisation, OwnerID: "org-1", Attribute: entities.DefaultAccountAttribute, GatewayID: "acct_1", OrganisationAccountID: "acct_1"}
	userLink = entities.GatewayLink{OwnerType: entities.GatewayLinkOwnerUser, OwnerID: "user-1", Attribute: entities.DefaultCustomerAttribute, GatewayID: "cus_1", OrganisationAccountID: "acct_1"}
)

func TestBillingUseCase_Validations(t *testing.T) {
	ctx := context.Background()
	uc := NewBillingUseCase(nil, nil, Attributes{}, nil)

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"register customer without id", func() error { _, err := uc.RegisterCustomer(ctx, "", entities.User{ID: " "}); return err }, ErrInvalidUserID},
		{"get customer without id", func() error { _, err := uc.GetCustomer(ctx, ""); return err }, ErrInvalidUserID},
		{"default payment method without token", func() error { _, err := uc.SetDefaultPaymentMethod(ctx, "user-1", " "); return err }, ErrInvalidToken},
		{"remove payment method without id", func() error { _, err := uc.RemovePaymentMethod(ctx, "user-1", ""); return err }, ErrInvalidPaymentMethodID},
		{"register organisation without id", func() error { _, err := uc.RegisterOrganisation(ctx, entities.ConnectAccount{}); return err }, ErrInvalidOrganisationID},
		{"balance without organisation", func() error { _, err := uc.GetBalance(ctx, ""); return err }, ErrInvalidOrganisationID},
		{"bank account without id", func() error { _, err := uc.GetBankAccount(ctx, "org-1", ""); return err }, ErrInvalidBankAccountID},
		{"add bank account without token", func() error { _, err := uc.AddBankAccount(ctx, "org-1", ""); return err }, ErrInvalidToken},
		{"remove bank account without id", func() error { _, err := uc.RemoveBankAccount(ctx, "org-1", ""); return err }, ErrInvalidBankAccountID},
		{"default bank account without id", func() error { _, err := uc.SetDefaultBankAccount(ctx, "org-1", "", true); return err }, ErrInvalidBankAccountID},
		{"delete plan without id", func() error { _, err := uc.DeletePlan(ctx, "", " "); return err }, ErrInvalidPlanID},
		{"subscribe without plan id", func() error { _, err := uc.Subscribe(ctx, "user-1", entities.MembershipType{}); return err }, ErrInvalidPlanID},
		{"stop subscription without id", func() error { _, err := uc.StopSubscription(ctx, "", "", true); return err }, ErrInvalidSubscriptionID},
		{"gateway not configured", func() error { _, err := uc.GetCustomer(ctx, "user-1"); return err }, ErrPaymentGatewayUnavailable},
		{"token without gateway", func() error { _, err := uc.CreateToken(ctx, "", entities.TokenDetails{}); return err }, ErrPaymentGatewayUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBillingUseCase_RegisterCustomer(t *testing.T) {
	ctx := context.Background()
	user := entities.User{ID: "user-1", Email: "member@example.com", FirstName: "Ada"}

	t.Run("creates and links a new customer in the organisation scope", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(entities.GatewayLink{}, nil)
		f.scoped.EXPECT().CreateCustomer(gomock.Any(), user).Return(entities.Customer{GatewayCustomerID: "cus_1"}, nil)
		f.links.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.GatewayLink) (entities.GatewayLink, error) {
			if l.ID != "user#user-1" || l.GatewayID != "cus_1" || l.OrganisationAccountID != "acct_1" || l.Attribute != entities.DefaultCustomerAttribute {
				t.Fatalf("unexpected link: %+v", l)
			}
			if l.CreatedAt.IsZero() || !l.CreatedAt.Equal(l.UpdatedAt) {
				t.Fatalf("expected timestamps to be set: %+v", l)
			}
			return l, nil
		})

		c, err := f.uc.RegisterCustomer(ctx, " org-1 ", user)
		if err != nil || c.GatewayCustomerID != "cus_1" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})

	t.Run("refreshes an existing registration on the platform", func(t *testing.T) {
		f := newBillingFixture(t)
		platformLink := userLink
		platformLink.OrganisationAccountID = ""
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(platformLink, nil)
		f.gateway.EXPECT().GetCustomer(gomock.Any(), user.WithAttribute(entities.DefaultCustomerAttribute, "cus_1")).Return(entities.Customer{GatewayCustomerID: "cus_1"}, nil)

		c, err := f.uc.RegisterCustomer(ctx, "", user)
		if err != nil || c.GatewayCustomerID != "cus_1" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})

	t.Run("replaces a link whose customer is gone", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		gomock.InOrder(
			f.scoped.EXPECT().GetCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.NotFound("GetCustomer", "customer cus_1")),
			f.links.EXPECT().Delete(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(nil),
			f.scoped.EXPECT().CreateCustomer(gomock.Any(), user).Return(entities.Customer{GatewayCustomerID: "cus_2"}, nil),
			f.links.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.GatewayLink) (entities.GatewayLink, error) { return l, nil }),
		)

		c, err := f.uc.RegisterCustomer(ctx, "org-1", user)
		if err != nil || c.GatewayCustomerID != "cus_2" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})

	t.Run("re-registers under a new scope", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		f.links.EXPECT().Delete(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(nil)
		f.gateway.EXPECT().CreateCustomer(gomock.Any(), user).Return(entities.Customer{GatewayCustomerID: "cus_platform"}, nil)
		f.links.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.GatewayLink) (entities.GatewayLink, error) {
			if l.OrganisationAccountID != "" {
				t.Fatalf("expected a platform link, got %+v", l)
			}
			return l, nil
		})

		if _, err := f.uc.RegisterCustomer(ctx, "", user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transport failure on refresh is returned", func(t *testing.T) {
		f := newBillingFixture(t)
		transport := interfaces.NewGatewayError("GetCustomer", interfaces.ErrTransport, errors.New("timeout"))
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		f.scoped.EXPECT().GetCustomer(gomock.Any(), gomock.Any()).Return(entities.Customer{}, transport)

		_, err := f.uc.RegisterCustomer(ctx, "org-1", user)
		if !errors.Is(err, interfaces.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("unknown organisation", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-x").Return(entities.GatewayLink{}, nil)

		_, err := f.uc.RegisterCustomer(ctx, "org-x", user)
		if !errors.Is(err, ErrOrganisationNotRegistered) {
			t.Fatalf("expected ErrOrganisationNotRegistered, got %v", err)
		}
	})

	t.Run("link save failure", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(entities.GatewayLink{}, nil)
		f.gateway.EXPECT().CreateCustomer(gomock.Any(), user).Return(entities.Customer{GatewayCustomerID: "cus_1"}, nil)
		f.links.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.GatewayLink{}, errors.New("ddb"))

		_, err := f.uc.RegisterCustomer(ctx, "", user)
		if err == nil || err.Error() != "ddb" {
			t.Fatalf("expected ddb error, got %v", err)
		}
	})
}

func TestBillingUseCase_CustomerOperationsUseRegisteredScope(t *testing.T) {
	ctx := context.Background()
	rehydrated := entities.User{ID: "user-1"}.WithAttribute(entities.DefaultCustomerAttribute, "cus_1")

	t.Run("payment methods", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil).Times(3)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped).Times(3)
		f.scoped.EXPECT().SetCustomerDefaultPaymentMethod(gomock.Any(), rehydrated, "tok_visa").Return(entities.PaymentMethod{GatewayMethodID: "card_1", IsDefault: true}, nil)
		f.scoped.EXPECT().GetCustomerPaymentMethods(gomock.Any(), rehydrated).Return([]entities.PaymentMethod{{GatewayMethodID: "card_1"}}, nil)
		f.scoped.EXPECT().RemoveCustomerPaymentMethod(gomock.Any(), rehydrated, "card_1").Return([]entities.PaymentMethod{}, nil)

		if m, err := f.uc.SetDefaultPaymentMethod(ctx, "user-1", " tok_visa "); err != nil || !m.IsDefault {
			t.Fatalf("unexpected method: %+v, %v", m, err)
		}
		if methods, err := f.uc.GetPaymentMethods(ctx, "user-1"); err != nil || len(methods) != 1 {
			t.Fatalf("unexpected methods: %+v, %v", methods, err)
		}
		if remaining, err := f.uc.RemovePaymentMethod(ctx, "user-1", "card_1"); err != nil || len(remaining) != 0 {
			t.Fatalf("unexpected remaining: %+v, %v", remaining, err)
		}
	})

	t.Run("update keeps caller fields and rehydrates the id", func(t *testing.T) {
		f := newBillingFixture(t)
		in := entities.User{ID: "user-1", Email: "new@example.com", FirstName: "Grace"}
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().UpdateCustomer(gomock.Any(), in.WithAttribute(entities.DefaultCustomerAttribute, "cus_1")).Return(entities.Customer{Email: "new@example.com"}, nil)

		if c, err := f.uc.UpdateCustomer(ctx, in); err != nil || c.Email != "new@example.com" {
			t.Fatalf("unexpected customer: %+v, %v", c, err)
		}
	})

	t.Run("custom attribute recorded on the link wins", func(t *testing.T) {
		f := newBillingFixture(t)
		link := userLink
		link.Attribute = "billing_customer"
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(link, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().GetInvoices(gomock.Any(), entities.User{ID: "user-1"}.WithAttribute("billing_customer", "cus_1")).Return([]entities.Invoice{{AmountPaid: 100}}, nil)

		if invoices, err := f.uc.GetInvoices(ctx, "user-1"); err != nil || len(invoices) != 1 {
			t.Fatalf("unexpected invoices: %+v, %v", invoices, err)
		}
	})

	t.Run("subscribe", func(t *testing.T) {
		f := newBillingFixture(t)
		plan := entities.MembershipType{GatewayPlanID: "plan_1"}
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().CreateSubscription(gomock.Any(), rehydrated, plan).Return(entities.Subscription{GatewaySubscriptionID: "sub_1"}, nil)

		if s, err := f.uc.Subscribe(ctx, "user-1", entities.MembershipType{GatewayPlanID: " plan_1 "}); err != nil || s.GatewaySubscriptionID != "sub_1" {
			t.Fatalf("unexpected subscription: %+v, %v", s, err)
		}
	})

	t.Run("unregistered user", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-2").Return(entities.GatewayLink{}, nil)

		if _, err := f.uc.GetCustomer(ctx, "user-2"); !errors.Is(err, ErrCustomerNotRegistered) {
			t.Fatalf("expected ErrCustomerNotRegistered, got %v", err)
		}
	})

	t.Run("gateway errors pass through with their kind", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(userLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().GetCustomer(gomock.Any(), rehydrated).Return(entities.Customer{}, interfaces.NotFound("GetCustomer", "customer cus_1 is deleted"))

		if _, err := f.uc.GetCustomer(ctx, "user-1"); !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBillingUseCase_RegisterOrganisation(t *testing.T) {
	ctx := context.Background()
	account := entities.ConnectAccount{ID: "org-1", OwnerEmail: "owner@gym.example", LongName: "Gym", Country: "Australia"}

	t.Run("creates and links the account to itself", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(entities.GatewayLink{}, nil)
		f.gateway.EXPECT().CreateOrganisationAccount(gomock.Any(), account).Return(entities.OrganisationAccount{GatewayAccountID: "acct_1"}, nil)
		f.links.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.GatewayLink) (entities.GatewayLink, error) {
			if l.ID != "organisation#org-1" || l.GatewayID != "acct_1" || l.OrganisationAccountID != "acct_1" || l.Attribute != entities.DefaultAccountAttribute {
				t.Fatalf("unexpected link: %+v", l)
			}
			return l, nil
		})

		if out, err := f.uc.RegisterOrganisation(ctx, account); err != nil || out.GatewayAccountID != "acct_1" {
			t.Fatalf("unexpected account: %+v, %v", out, err)
		}
	})

	t.Run("already registered", func(t *testing.T) {
		f := newBillingFixture(t)
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().GetOrganisationAccount(gomock.Any(), account.WithAttribute(entities.DefaultAccountAttribute, "acct_1")).Return(entities.OrganisationAccount{GatewayAccountID: "acct_1"}, nil)

		if out, err := f.uc.RegisterOrganisation(ctx, account); err != nil || out.GatewayAccountID != "acct_1" {
			t.Fatalf("unexpected account: %+v, %v", out, err)
		}
	})

	t.Run("resolution failure is returned without saving", func(t *testing.T) {
		f := newBillingFixture(t)
		atlantis := account
		atlantis.Country = "Atlantis"
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(entities.GatewayLink{}, nil)
		f.gateway.EXPECT().CreateOrganisationAccount(gomock.Any(), atlantis).Return(entities.OrganisationAccount{}, interfaces.NewGatewayError("CreateOrganisationAccount", interfaces.ErrResolution, nil))

		if _, err := f.uc.RegisterOrganisation(ctx, atlantis); !errors.Is(err, interfaces.ErrResolution) {
			t.Fatalf("expected ErrResolution, got %v", err)
		}
	})
}

func TestBillingUseCase_OrganisationOperationsRunAsTheAccount(t *testing.T) {
	ctx := context.Background()
	rehydrated := entities.ConnectAccount{ID: "org-1"}.WithAttribute(entities.DefaultAccountAttribute, "acct_1")

	f := newBillingFixture(t)
	f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil).AnyTimes()
	f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped).AnyTimes()

	f.scoped.EXPECT().GetOrganisationAccount(gomock.Any(), rehydrated).Return(entities.OrganisationAccount{GatewayAccountID: "acct_1"}, nil)
	f.scoped.EXPECT().GetAllOrganisationBankAccounts(gomock.Any(), rehydrated).Return([]entities.BankAccount{{GatewayBankAccountID: "ba_1"}}, nil)
	f.scoped.EXPECT().GetOrganisationBankAccount(gomock.Any(), rehydrated, "ba_1").Return(entities.BankAccount{GatewayBankAccountID: "ba_1"}, nil)
	f.scoped.EXPECT().AddOrganisationBankAccount(gomock.Any(), rehydrated, "btok_1").Return(entities.BankAccount{GatewayBankAccountID: "ba_2"}, nil)
	f.scoped.EXPECT().SetDefaultOrganisationBankAccount(gomock.Any(), rehydrated, "ba_2", true).Return(entities.BankAccount{GatewayBankAccountID: "ba_2", DefaultForCurrency: true}, nil)
	f.scoped.EXPECT().RemoveOrganisationBankAccount(gomock.Any(), rehydrated, "ba_1").Return(entities.DeletedBankAccount{GatewayBankAccountID: "ba_1", Deleted: true}, nil)
	f.scoped.EXPECT().GetVerificationInformation(gomock.Any(), rehydrated).Return(entities.Verification{}, nil)
	f.scoped.EXPECT().SaveVerificationInformation(gomock.Any(), rehydrated, gomock.Any()).Return(entities.Verification{PayoutsEnabled: true}, nil)
	f.scoped.EXPECT().GetAccountBalance(gomock.Any(), rehydrated).Return(entities.Balance{}, nil)
	f.scoped.EXPECT().UpdateOrganisationAccount(gomock.Any(), entities.ConnectAccount{ID: "org-1", LongName: "Renamed"}.WithAttribute(entities.DefaultAccountAttribute, "acct_1")).Return(entities.OrganisationAccount{}, nil)

	if _, err := f.uc.GetOrganisation(ctx, "org-1"); err != nil {
		t.Fatalf("get organisation: %v", err)
	}
	if out, err := f.uc.ListBankAccounts(ctx, "org-1"); err != nil || len(out) != 1 {
		t.Fatalf("list bank accounts: %+v, %v", out, err)
	}
	if _, err := f.uc.GetBankAccount(ctx, "org-1", "ba_1"); err != nil {
		t.Fatalf("get bank account: %v", err)
	}
	if out, err := f.uc.AddBankAccount(ctx, "org-1", "btok_1"); err != nil || out.GatewayBankAccountID != "ba_2" {
		t.Fatalf("add bank account: %+v, %v", out, err)
	}
	if out, err := f.uc.SetDefaultBankAccount(ctx, "org-1", "ba_2", true); err != nil || !out.DefaultForCurrency {
		t.Fatalf("set default bank account: %+v, %v", out, err)
	}
	if out, err := f.uc.RemoveBankAccount(ctx, "org-1", "ba_1"); err != nil || !out.Deleted {
		t.Fatalf("remove bank account: %+v, %v", out, err)
	}
	if _, err := f.uc.GetVerification(ctx, "org-1"); err != nil {
		t.Fatalf("get verification: %v", err)
	}
	if out, err := f.uc.SaveVerification(ctx, "org-1", entities.VerificationDetails{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-04-21"}); err != nil || !out.PayoutsEnabled {
		t.Fatalf("save verification: %+v, %v", out, err)
	}
	if _, err := f.uc.GetBalance(ctx, "org-1"); err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if _, err := f.uc.UpdateOrganisation(ctx, entities.ConnectAccount{ID: "org-1", LongName: "Renamed"}); err != nil {
		t.Fatalf("update organisation: %v", err)
	}
}

func TestBillingUseCase_PlansSubscriptionsAndTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("plans live on the organisation account", func(t *testing.T) {
		f := newBillingFixture(t)
		plan := entities.MembershipType{Name: "Gold", Cost: 4500, Currency: "aud", Interval: "month", IntervalCount: 1}
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil).Times(2)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped).Times(2)
		f.scoped.EXPECT().CreateMembershipPlan(gomock.Any(), plan).Return(entities.MembershipPlan{GatewayPlanID: "plan_1", Active: true}, nil)
		f.scoped.EXPECT().DeleteMembershipPlan(gomock.Any(), entities.MembershipType{GatewayPlanID: "plan_1"}).Return(entities.MembershipPlan{GatewayPlanID: "plan_1"}, nil)

		if p, err := f.uc.CreatePlan(ctx, "org-1", plan); err != nil || !p.Active {
			t.Fatalf("unexpected plan: %+v, %v", p, err)
		}
		if p, err := f.uc.DeletePlan(ctx, "org-1", "plan_1"); err != nil || p.Active {
			t.Fatalf("unexpected deleted plan: %+v, %v", p, err)
		}
	})

	t.Run("platform plan and stop", func(t *testing.T) {
		f := newBillingFixture(t)
		f.gateway.EXPECT().CreateMembershipPlan(gomock.Any(), gomock.Any()).Return(entities.MembershipPlan{GatewayPlanID: "plan_p"}, nil)
		f.gateway.EXPECT().StopSubscription(gomock.Any(), "sub_1", false).Return(entities.Subscription{GatewaySubscriptionID: "sub_1"}, nil)

		if _, err := f.uc.CreatePlan(ctx, "", entities.MembershipType{Name: "Platform"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.StopSubscription(ctx, "", " sub_1 ", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("token contract violation passes through", func(t *testing.T) {
		f := newBillingFixture(t)
		details := entities.TokenDetails{"cheque": map[string]any{}}
		f.gateway.EXPECT().CreateToken(gomock.Any(), details).Return(nil, interfaces.ContractViolation("CreateToken", "unsupported token details"))

		if _, err := f.uc.CreateToken(ctx, "", details); !errors.Is(err, interfaces.ErrContractViolation) {
			t.Fatalf("expected ErrContractViolation, got %v", err)
		}
	})

	t.Run("scoped token", func(t *testing.T) {
		f := newBillingFixture(t)
		details := entities.TokenDetails{entities.TokenTypeCard: map[string]any{"number": "4242424242424242"}}
		f.links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerOrganisation, "org-1").Return(orgLink, nil)
		f.gateway.EXPECT().WithOrganisationAccountID("acct_1").Return(f.scoped)
		f.scoped.EXPECT().CreateToken(gomock.Any(), details).Return(entities.Token{"id": "tok_1"}, nil)

		if token, err := f.uc.CreateToken(ctx, "org-1", details); err != nil || token.ID() != "tok_1" {
			t.Fatalf("unexpected token: %v, %v", token, err)
		}
	})
}

func TestBillingUseCase_LogsFailuresWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	links := mock_interfaces.NewMockIGatewayLinkRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	log, hook := test.NewNullLogger()
	uc := NewBillingUseCase(links, gateway, Attributes{}, log)

	links.EXPECT().Get(gomock.Any(), entities.GatewayLinkOwnerUser, "user-1").Return(entities.GatewayLink{}, errors.New("ddb down"))

	if _, err := uc.GetInvoices(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected an error")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error log entry, got %+v", entry)
	}
	if entry.Data["component"] != "billing.usecase" || entry.Data["user_id"] != "user-1" || entry.Data[logrus.ErrorKey] == nil {
		t.Fatalf("unexpected log fields: %+v", entry.Data)
	}
}
