package entities

// MembershipPlan is a recurring price an organisation charges its members.
//
// Monetary representation:
//   - Amount is expressed in the currency's minor unit (e.g. cents).
//   - Currency is the lower-case ISO-4217 code.
//
// Deleting a plan only deactivates it; Active=false is the tombstone.
type MembershipPlan struct {
	GatewayPlanID string `json:"gateway_plan_id"`
	Active        bool   `json:"active"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count"`
	Name          string `json:"name"`
}
