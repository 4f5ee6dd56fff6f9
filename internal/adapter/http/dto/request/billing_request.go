package request

import (
	"errors"
	"strings"

	"financier/internal/adapter/http/dto/response"
	"financier/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPlanPrice = errors.New("invalid plan price")
)

// CustomerRequest registers or updates the gateway customer of a host user.
// UserID is taken from the path on updates.
type CustomerRequest struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r CustomerRequest) ToUser() entities.User {
	return entities.User{
		ID:        strings.TrimSpace(r.UserID),
		Email:     strings.TrimSpace(r.Email),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
	}
}

// OrganisationRequest registers or updates an organisation's gateway account.
type OrganisationRequest struct {
	OrganisationID string `json:"organisation_id"`
	OwnerEmail     string `json:"owner_email" binding:"required,email"`
	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	LongName       string `json:"long_name" binding:"required"`
	ContactWebsite string `json:"contact_website" binding:"omitempty,url"`
	Country        string `json:"country" binding:"required"`
	BrandingColor  string `json:"branding_color" binding:"omitempty,hexcolor"`
}

func (r OrganisationRequest) ToConnectAccount() entities.ConnectAccount {
	return entities.ConnectAccount{
		ID:             strings.TrimSpace(r.OrganisationID),
		OwnerEmail:     strings.TrimSpace(r.OwnerEmail),
		ContactEmail:   strings.TrimSpace(r.ContactEmail),
		LongName:       strings.TrimSpace(r.LongName),
		ContactWebsite: strings.TrimSpace(r.ContactWebsite),
		Country:        strings.TrimSpace(r.Country),
		BrandingColor:  strings.TrimSpace(r.BrandingColor),
	}
}

// TokenRequest carries a card or bank account token.
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type DefaultBankAccountRequest struct {
	DefaultForCurrency *bool `json:"default_for_currency"`
}

// Resolve defaults to true: the usual intent is to promote the account.
func (r DefaultBankAccountRequest) Resolve() bool {
	return r.DefaultForCurrency == nil || *r.DefaultForCurrency
}

type AddressRequest struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

type TOSAcceptanceRequest struct {
	Date int64  `json:"date" binding:"required"`
	IP   string `json:"ip" binding:"required,ip"`
}

type VerificationRequest struct {
	Address       AddressRequest        `json:"address"`
	FirstName     string                `json:"first_name" binding:"required"`
	LastName      string                `json:"last_name" binding:"required"`
	DateOfBirth   string                `json:"date_of_birth" binding:"required"`
	TOSAcceptance *TOSAcceptanceRequest `json:"tos_acceptance"`
}

func (r VerificationRequest) ToDetails() entities.VerificationDetails {
	d := entities.VerificationDetails{
		Address: entities.Address{
			Line1:      strings.TrimSpace(r.Address.Line1),
			City:       strings.TrimSpace(r.Address.City),
			PostalCode: strings.TrimSpace(r.Address.PostalCode),
			State:      strings.TrimSpace(r.Address.State),
		},
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		DateOfBirth: strings.TrimSpace(r.DateOfBirth),
	}
	if r.TOSAcceptance != nil {
		d.TOSAcceptance = &entities.TOSAcceptance{Date: r.TOSAcceptance.Date, IP: strings.TrimSpace(r.TOSAcceptance.IP)}
	}
	return d
}

// PlanRequest accepts the cost either in minor units (cost) or as a
// major-unit decimal string (price, e.g. "45.00"). price wins when both are set.
type PlanRequest struct {
	Name          string `json:"name" binding:"required"`
	Cost          *int64 `json:"cost" binding:"omitempty,gte=0"`
	Price         string `json:"price"`
	Currency      string `json:"currency" binding:"required,len=3"`
	Interval      string `json:"interval" binding:"required,oneof=day week month year"`
	IntervalCount int64  `json:"interval_count" binding:"omitempty,gte=1"`
	Active        *bool  `json:"active"`
}

func (r PlanRequest) ToMembershipType() (entities.MembershipType, error) {
	cost, err := r.resolveCost()
	if err != nil {
		return entities.MembershipType{}, err
	}
	count := r.IntervalCount
	if count == 0 {
		count = 1
	}
	return entities.MembershipType{
		Name:          strings.TrimSpace(r.Name),
		Cost:          cost,
		Currency:      strings.ToLower(strings.TrimSpace(r.Currency)),
		Interval:      r.Interval,
		IntervalCount: count,
		Active:        r.Active,
	}, nil
}

func (r PlanRequest) resolveCost() (int64, error) {
	if price := strings.TrimSpace(r.Price); price != "" {
		d, err := decimal.NewFromString(price)
		if err != nil || d.IsNegative() {
			return 0, ErrInvalidPlanPrice
		}
		minor := d.Shift(response.MinorUnitScale(r.Currency))
		if !minor.IsInteger() || !minor.BigInt().IsInt64() {
			return 0, ErrInvalidPlanPrice
		}
		return minor.IntPart(), nil
	}
	if r.Cost == nil {
		return 0, ErrInvalidPlanPrice
	}
	return *r.Cost, nil
}

type SubscriptionRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	GatewayPlanID string `json:"gateway_plan_id" binding:"required"`
}

func (r SubscriptionRequest) ToMembershipType() entities.MembershipType {
	return entities.MembershipType{GatewayPlanID: strings.TrimSpace(r.GatewayPlanID)}
}
