package entities

// BankAccount is a payout destination of an organisation account.
// The full account number is write-only and never kept here.
type BankAccount struct {
	GatewayBankAccountID string `json:"gateway_bank_account_id"`
	BankName             string `json:"bank_name"`
	Country              string `json:"country"`
	Currency             string `json:"currency"`
	Last4                string `json:"last4"`
	RoutingNumber        string `json:"routing_number"`
	DefaultForCurrency   bool   `json:"default_for_currency"`
}

// DeletedBankAccount is the tombstone returned when a bank account is removed.
type DeletedBankAccount struct {
	GatewayBankAccountID string `json:"gateway_bank_account_id"`
	Deleted              bool   `json:"deleted"`
}
