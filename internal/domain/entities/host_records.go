package entities

import "strings"

// Default attribute names under which the host stores gateway identifiers.
const (
	DefaultCustomerAttribute = "stripe_customer_id"
	DefaultAccountAttribute  = "stripe_account_id"
)

// User is the host application's member record.
//
// The gateway customer id lives in Attributes under a host-configured name
// (DefaultCustomerAttribute unless overridden), never in a fixed field.
type User struct {
	ID         string            `json:"id" validate:"required"`
	Email      string            `json:"email" validate:"required,email"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Name is the display name sent to the gateway.
func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Attribute reads a host attribute, "" when unset.
func (u User) Attribute(name string) string {
	return strings.TrimSpace(u.Attributes[name])
}

// WithAttribute returns a copy of u with the attribute set.
func (u User) WithAttribute(name, value string) User {
	u.Attributes = copyAttributes(u.Attributes)
	u.Attributes[name] = value
	return u
}

// ConnectAccount is the host's organisation record backing an OrganisationAccount.
type ConnectAccount struct {
	ID             string            `json:"id" validate:"required"`
	OwnerEmail     string            `json:"owner_email" validate:"required,email"`
	ContactEmail   string            `json:"contact_email" validate:"omitempty,email"`
	LongName       string            `json:"long_name" validate:"required"`
	ContactWebsite string            `json:"contact_website" validate:"omitempty,url"`
	Country        string            `json:"country" validate:"required"`
	BrandingColor  string            `json:"branding_color" validate:"omitempty,hexcolor"`
	Attributes     map[string]string `json:"attributes,omitempty"`
}

// GatewayAccountID reads the gateway account id stored under attribute.
func (a ConnectAccount) GatewayAccountID(attribute string) string {
	return strings.TrimSpace(a.Attributes[attribute])
}

// WithAttribute returns a copy of a with the attribute set.
func (a ConnectAccount) WithAttribute(name, value string) ConnectAccount {
	a.Attributes = copyAttributes(a.Attributes)
	a.Attributes[name] = value
	return a
}

// MembershipType is the host's plan definition. Cost is in minor units.
// A nil Active creates an active plan.
type MembershipType struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Cost          int64  `json:"cost" validate:"gte=0"`
	Currency      string `json:"currency" validate:"required,len=3"`
	Interval      string `json:"interval" validate:"required,oneof=day week month year"`
	IntervalCount int64  `json:"interval_count" validate:"gte=1"`
	Active        *bool  `json:"active,omitempty"`
	GatewayPlanID string `json:"gateway_plan_id"`
}

// IsActive reports the requested active flag, true when unset.
func (m MembershipType) IsActive() bool {
	return m.Active == nil || *m.Active
}

// TOSAcceptance records when and from where the terms of service were accepted.
type TOSAcceptance struct {
	Date int64  `json:"date"`
	IP   string `json:"ip"`
}

// VerificationDetails is the KYC payload submitted for an organisation.
// DateOfBirth is a calendar date, e.g. "1990-04-21".
type VerificationDetails struct {
	Address       Address        `json:"address"`
	FirstName     string         `json:"first_name" validate:"required"`
	LastName      string         `json:"last_name" validate:"required"`
	DateOfBirth   string         `json:"date_of_birth" validate:"required"`
	TOSAcceptance *TOSAcceptance `json:"tos_acceptance,omitempty"`
}

func copyAttributes(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
