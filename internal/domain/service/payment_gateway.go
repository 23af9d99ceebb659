// Package service defines interfaces for core, stateless domain logic and
// for external collaborators the use cases depend on.
package service

import "context"

// Webhook event types delivered by the payment gateway. Anything else is
// ignored by the order lifecycle.
const (
	WebhookPaymentSucceeded = "payment_intent.succeeded"
	WebhookPaymentFailed    = "payment_intent.payment_failed"
)

// PaymentIntent is the gateway's handle for an in-progress payment attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// WebhookEvent is a verified, parsed webhook notification. IntentID joins
// the event back to the order awaiting it.
type WebhookEvent struct {
	Type     string
	IntentID string
}

// PaymentGateway abstracts the external payment processor. Calls have a
// bounded timeout and are never retried in-process; redelivery is the
// gateway's own webhook mechanism.
type PaymentGateway interface {
	// CreatePaymentIntent registers a payment attempt for the given amount
	// in minor units (e.g. centavos) and returns the intent handle.
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*PaymentIntent, error)

	// VerifyWebhook checks the signature of a raw webhook delivery and
	// parses it into an event. A signature mismatch is an error; unknown
	// event types are returned as-is for the caller to ignore.
	VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
