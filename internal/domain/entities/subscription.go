package entities

// SubscriptionStatus mirrors the gateway's subscription lifecycle.
type SubscriptionStatus string

const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"
)

// Subscription binds a customer to a membership plan.
// Period boundaries are epoch seconds.
type Subscription struct {
	GatewaySubscriptionID string             `json:"gateway_subscription_id"`
	GatewayCustomerID     string             `json:"gateway_customer_id"`
	Status                SubscriptionStatus `json:"status"`
	CurrentPeriodStart    int64              `json:"current_period_start"`
	CurrentPeriodEnd      int64              `json:"current_period_end"`
	CancelAtPeriodEnd     bool               `json:"cancel_at_period_end"`
}
