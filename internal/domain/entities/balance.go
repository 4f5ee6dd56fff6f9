package entities

// BalanceAmount is one currency bucket of a Balance. Breakdown maps a funding
// source type (card, bank_account, ...) to its share of Amount.
// Amounts are passed through as the gateway reports them, so a pending
// bucket may be negative after refunds or disputes.
type BalanceAmount struct {
	Amount    int64            `json:"amount"`
	Currency  string           `json:"currency"`
	Breakdown map[string]int64 `json:"breakdown"`
}

// Balance of an organisation account, in minor units per currency.
type Balance struct {
	Available []BalanceAmount `json:"available"`
	Pending   []BalanceAmount `json:"pending"`
}
