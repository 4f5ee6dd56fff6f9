package payments

import (
	"strings"
	"time"

	"financier/internal/domain/entities"

	"github.com/stripe/stripe-go/v76"
)

// Translators map stripe-go responses to canonical records. They never fail:
// nil inputs and absent sub-objects produce zero values.

var cardBrands = map[string]entities.CardBrand{
	"visa":             entities.CardBrandVisa,
	"mastercard":       entities.CardBrandMastercard,
	"american express": entities.CardBrandAmericanExpress,
	"amex":             entities.CardBrandAmericanExpress,
	"discover":         entities.CardBrandDiscover,
	"jcb":              entities.CardBrandJCB,
	"diners club":      entities.CardBrandDinersClub,
	"diners":           entities.CardBrandDinersClub,
	"unionpay":         entities.CardBrandUnionPay,
}

// TranslateCardBrand normalizes a processor brand label.
func TranslateCardBrand(brand string) entities.CardBrand {
	if b, ok := cardBrands[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return b
	}
	return entities.CardBrandUnknown
}

func TranslateCustomer(c *stripe.Customer) entities.Customer {
	if c == nil {
		return entities.Customer{PaymentMethods: []entities.PaymentMethod{}}
	}
	out := entities.Customer{
		GatewayCustomerID: c.ID,
		Email:             c.Email,
		Name:              c.Name,
		PaymentMethods:    TranslatePaymentMethods(c),
	}
	if c.DefaultSource != nil {
		out.DefaultPaymentMethodID = c.DefaultSource.ID
	}
	return out
}

// TranslatePaymentMethods lists the customer's cards in processor order and
// flags the one matching default_source.
func TranslatePaymentMethods(c *stripe.Customer) []entities.PaymentMethod {
	out := []entities.PaymentMethod{}
	if c == nil || c.Sources == nil {
		return out
	}
	defaultID := ""
	if c.DefaultSource != nil {
		defaultID = c.DefaultSource.ID
	}
	for _, src := range c.Sources.Data {
		if src == nil || src.Card == nil || src.Deleted {
			continue
		}
		m := TranslateCard(src.Card)
		if m.GatewayMethodID == "" {
			m.GatewayMethodID = src.ID
		}
		if m.GatewayCustomerID == "" {
			m.GatewayCustomerID = c.ID
		}
		m.IsDefault = defaultID != "" && m.GatewayMethodID == defaultID
		out = append(out, m)
	}
	return out
}

func TranslateCard(card *stripe.Card) entities.PaymentMethod {
	if card == nil {
		return entities.PaymentMethod{}
	}
	out := entities.PaymentMethod{
		GatewayMethodID: card.ID,
		Last4:           card.Last4,
		Brand:           TranslateCardBrand(string(card.Brand)),
		Country:         card.Country,
	}
	if card.Customer != nil {
		out.GatewayCustomerID = card.Customer.ID
		if card.Customer.DefaultSource != nil {
			out.IsDefault = card.Customer.DefaultSource.ID == card.ID
		}
	}
	return out
}

func TranslateAccount(a *stripe.Account) entities.OrganisationAccount {
	if a == nil {
		return entities.OrganisationAccount{}
	}
	out := entities.OrganisationAccount{
		GatewayAccountID: a.ID,
		Email:            a.Email,
		Country:          a.Country,
		PayoutsEnabled:   a.PayoutsEnabled,
	}
	if p := a.BusinessProfile; p != nil {
		out.SupportEmail = p.SupportEmail
		out.DisplayName = p.Name
		out.Website = p.URL
	}
	if a.Settings != nil && a.Settings.Branding != nil {
		out.BrandingColor = a.Settings.Branding.PrimaryColor
	}
	return out
}

func TranslatePlan(p *stripe.Plan) entities.MembershipPlan {
	if p == nil {
		return entities.MembershipPlan{}
	}
	name := p.Nickname
	if p.Product != nil && p.Product.Name != "" {
		name = p.Product.Name
	}
	return entities.MembershipPlan{
		GatewayPlanID: p.ID,
		Active:        p.Active,
		Amount:        p.Amount,
		Currency:      normalizeCurrency(string(p.Currency)),
		Interval:      string(p.Interval),
		IntervalCount: p.IntervalCount,
		Name:          name,
	}
}

func TranslateSubscription(s *stripe.Subscription) entities.Subscription {
	if s == nil {
		return entities.Subscription{}
	}
	out := entities.Subscription{
		GatewaySubscriptionID: s.ID,
		Status:                entities.SubscriptionStatus(s.Status),
		CurrentPeriodStart:    s.CurrentPeriodStart,
		CurrentPeriodEnd:      s.CurrentPeriodEnd,
		CancelAtPeriodEnd:     s.CancelAtPeriodEnd,
	}
	if s.Customer != nil {
		out.GatewayCustomerID = s.Customer.ID
	}
	return out
}

func TranslateBankAccount(b *stripe.BankAccount) entities.BankAccount {
	if b == nil {
		return entities.BankAccount{}
	}
	return entities.BankAccount{
		GatewayBankAccountID: b.ID,
		BankName:             b.BankName,
		Country:              b.Country,
		Currency:             normalizeCurrency(string(b.Currency)),
		Last4:                b.Last4,
		RoutingNumber:        b.RoutingNumber,
		DefaultForCurrency:   b.DefaultForCurrency,
	}
}

func TranslateBankAccounts(in []*stripe.BankAccount) []entities.BankAccount {
	out := make([]entities.BankAccount, 0, len(in))
	for _, b := range in {
		if b == nil {
			continue
		}
		out = append(out, TranslateBankAccount(b))
	}
	return out
}

func TranslateDeletedBankAccount(b *stripe.BankAccount) entities.DeletedBankAccount {
	if b == nil {
		return entities.DeletedBankAccount{}
	}
	return entities.DeletedBankAccount{GatewayBankAccountID: b.ID, Deleted: b.Deleted}
}

// TranslateVerification extracts the KYC view of an account. verified is nil
// while the processor has not reached a decision.
func TranslateVerification(a *stripe.Account) entities.Verification {
	if a == nil {
		return entities.Verification{}
	}
	out := entities.Verification{PayoutsEnabled: a.PayoutsEnabled}
	if a.Requirements != nil && a.Requirements.DisabledReason != "" {
		reason := string(a.Requirements.DisabledReason)
		out.DisabledReason = &reason
	}

	person := a.Individual
	if person == nil {
		return out
	}
	out.FirstName = person.FirstName
	out.LastName = person.LastName
	if person.Address != nil {
		out.Address = entities.Address{
			Line1:      person.Address.Line1,
			City:       person.Address.City,
			PostalCode: person.Address.PostalCode,
			State:      person.Address.State,
		}
	}
	if dob := person.DOB; dob != nil && dob.Year > 0 && dob.Month > 0 && dob.Day > 0 {
		t := time.Date(int(dob.Year), time.Month(dob.Month), int(dob.Day), 0, 0, 0, 0, time.UTC)
		out.DateOfBirth = &t
	}
	if person.Verification != nil {
		switch person.Verification.Status {
		case stripe.PersonVerificationStatusVerified:
			verified := true
			out.Verified = &verified
		case stripe.PersonVerificationStatusUnverified:
			verified := false
			out.Verified = &verified
		}
	}
	return out
}

func TranslateBalance(b *stripe.Balance) entities.Balance {
	if b == nil {
		return entities.Balance{Available: []entities.BalanceAmount{}, Pending: []entities.BalanceAmount{}}
	}
	return entities.Balance{
		Available: translateAmounts(b.Available),
		Pending:   translateAmounts(b.Pending),
	}
}

func translateAmounts(in []*stripe.Amount) []entities.BalanceAmount {
	out := make([]entities.BalanceAmount, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		breakdown := make(map[string]int64, len(a.SourceTypes))
		for source, amount := range a.SourceTypes {
			breakdown[string(source)] = amount
		}
		out = append(out, entities.BalanceAmount{
			Amount:    a.Amount,
			Currency:  normalizeCurrency(string(a.Currency)),
			Breakdown: breakdown,
		})
	}
	return out
}

func TranslateInvoice(i *stripe.Invoice) entities.Invoice {
	if i == nil {
		return entities.Invoice{}
	}
	return entities.Invoice{
		Created:          i.Created,
		AmountPaid:       i.AmountPaid,
		HostedInvoiceURL: i.HostedInvoiceURL,
		Currency:         normalizeCurrency(string(i.Currency)),
	}
}

func TranslateInvoices(in []*stripe.Invoice) []entities.Invoice {
	out := make([]entities.Invoice, 0, len(in))
	for _, i := range in {
		if i == nil {
			continue
		}
		out = append(out, TranslateInvoice(i))
	}
	return out
}

// TranslateToken flattens a token into the opaque map handed to callers.
// Only the section matching the token type is included.
func TranslateToken(t *stripe.Token) entities.Token {
	if t == nil {
		return entities.Token{}
	}
	out := entities.Token{
		"id":        t.ID,
		"object":    "token",
		"type":      string(t.Type),
		"client_ip": t.ClientIP,
		"created":   t.Created,
		"livemode":  t.Livemode,
		"used":      t.Used,
	}
	switch {
	case t.BankAccount != nil:
		b := t.BankAccount
		out[entities.TokenTypeBankAccount] = map[string]any{
			"id":                  b.ID,
			"object":              "bank_account",
			"account_holder_name": b.AccountHolderName,
			"bank_name":           b.BankName,
			"country":             b.Country,
			"currency":            normalizeCurrency(string(b.Currency)),
			"last4":               b.Last4,
			"routing_number":      b.RoutingNumber,
			"status":              string(b.Status),
		}
	case t.Card != nil:
		c := t.Card
		out[entities.TokenTypeCard] = map[string]any{
			"id":        c.ID,
			"object":    "card",
			"brand":     string(TranslateCardBrand(string(c.Brand))),
			"country":   c.Country,
			"exp_month": c.ExpMonth,
			"exp_year":  c.ExpYear,
			"last4":     c.Last4,
		}
	}
	return out
}
