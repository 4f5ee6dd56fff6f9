package entities

// Invoice issued to a customer. Created is epoch seconds; AmountPaid is in minor units.
type Invoice struct {
	Created          int64  `json:"created"`
	AmountPaid       int64  `json:"amount_paid"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
	Currency         string `json:"currency"`
}
