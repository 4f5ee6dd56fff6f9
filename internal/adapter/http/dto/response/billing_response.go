package response

import (
	"financier/internal/domain/entities"
)

type MembershipPlanResponse struct {
	GatewayPlanID string `json:"gateway_plan_id"`
	Name          string `json:"name"`
	Active        bool   `json:"active"`
	Price         Money  `json:"price"`
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count"`
}

func FromMembershipPlan(p entities.MembershipPlan) MembershipPlanResponse {
	return MembershipPlanResponse{
		GatewayPlanID: p.GatewayPlanID,
		Name:          p.Name,
		Active:        p.Active,
		Price:         NewMoney(p.Amount, p.Currency),
		Interval:      p.Interval,
		IntervalCount: p.IntervalCount,
	}
}

type InvoiceResponse struct {
	Created          int64  `json:"created"`
	AmountPaid       Money  `json:"amount_paid"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
}

func FromInvoices(in []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(in))
	for _, i := range in {
		out = append(out, InvoiceResponse{
			Created:          i.Created,
			AmountPaid:       NewMoney(i.AmountPaid, i.Currency),
			HostedInvoiceURL: i.HostedInvoiceURL,
		})
	}
	return out
}

type BalanceAmountResponse struct {
	Money
	Breakdown map[string]Money `json:"breakdown"`
}

type BalanceResponse struct {
	Available []BalanceAmountResponse `json:"available"`
	Pending   []BalanceAmountResponse `json:"pending"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{
		Available: fromBalanceAmounts(b.Available),
		Pending:   fromBalanceAmounts(b.Pending),
	}
}

func fromBalanceAmounts(in []entities.BalanceAmount) []BalanceAmountResponse {
	out := make([]BalanceAmountResponse, 0, len(in))
	for _, a := range in {
		breakdown := make(map[string]Money, len(a.Breakdown))
		for source, amount := range a.Breakdown {
			breakdown[source] = NewMoney(amount, a.Currency)
		}
		out = append(out, BalanceAmountResponse{Money: NewMoney(a.Amount, a.Currency), Breakdown: breakdown})
	}
	return out
}

// PaymentMethodsResponse is the set a customer holds after a change.
type PaymentMethodsResponse struct {
	PaymentMethods []entities.PaymentMethod `json:"payment_methods"`
}

func FromPaymentMethods(in []entities.PaymentMethod) PaymentMethodsResponse {
	if in == nil {
		in = []entities.PaymentMethod{}
	}
	return PaymentMethodsResponse{PaymentMethods: in}
}

type BankAccountsResponse struct {
	BankAccounts []entities.BankAccount `json:"bank_accounts"`
}

func FromBankAccounts(in []entities.BankAccount) BankAccountsResponse {
	if in == nil {
		in = []entities.BankAccount{}
	}
	return BankAccountsResponse{BankAccounts: in}
}
