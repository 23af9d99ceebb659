// Package payment contains the Stripe implementation of the payment gateway.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

const defaultGatewayTimeout = 10 * time.Second

// stripeGateway implements service.PaymentGateway using the Stripe API.
type stripeGateway struct {
	api           *client.API
	webhookSecret string
	timeout       time.Duration
	logger        *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe configuration is missing")
	}

	timeout := cfg.Stripe.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return &stripeGateway{
		api:           client.New(cfg.Stripe.SecretKey, nil),
		webhookSecret: cfg.Stripe.WebhookSecret,
		timeout:       timeout,
		logger:        logger,
	}, nil
}

// CreatePaymentIntent opens an intent for the given amount in minor
// units. The metadata travels to Stripe and comes back on every webhook,
// which makes debugging stuck payments tractable.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*service.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("Stripe payment intent creation failed",
			slog.Int64("amount", amountMinorUnits),
			slog.String("currency", currency),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create stripe payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the raw
// payload and extracts the payment intent the event refers to.
func (g *stripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (*service.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrWebhookSignatureInvalid, err.Error())
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errors.Wrap(err, "failed to decode webhook payment intent")
	}

	return &service.WebhookEvent{
		Type:     string(event.Type),
		IntentID: intent.ID,
	}, nil
}
