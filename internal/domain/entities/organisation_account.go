package entities

// OrganisationAccount is a merchant sub-account ("connect" account) nested under
// the platform's own gateway account.
//
// GatewayAccountID is stable for the lifetime of the account and is the scope
// passed to every on-behalf-of operation.
type OrganisationAccount struct {
	GatewayAccountID string `json:"gateway_account_id"`
	Email            string `json:"email"`
	SupportEmail     string `json:"support_email"`
	DisplayName      string `json:"display_name"`
	Website          string `json:"website"`
	Country          string `json:"country"`
	BrandingColor    string `json:"branding_color"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
}
