package entities

import "time"

// Address is the KYC postal address of an organisation's representative.
type Address struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// Verification carries the identity (KYC) state of an OrganisationAccount.
//
// Verified, DisabledReason and DateOfBirth are nil when the gateway has not
// reported them yet. DateOfBirth is a UTC calendar date (midnight).
type Verification struct {
	PayoutsEnabled bool       `json:"payouts_enabled"`
	Verified       *bool      `json:"verified"`
	DisabledReason *string    `json:"disabled_reason"`
	Address        Address    `json:"address"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
}
