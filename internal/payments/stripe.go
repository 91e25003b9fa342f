package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/refund"
)

// StripeGateway is a thin wrapper around stripe-go. It satisfies
// services.PaymentGateway.
type StripeGateway struct{}

func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

// Charge creates a PaymentIntent and returns its ID. Confirmation is left
// to the card-collection flow.
func (g *StripeGateway) Charge(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ID, nil
}

// Refund reverses a previously charged PaymentIntent.
func (g *StripeGateway) Refund(ctx context.Context, providerID string) error {
	_, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(providerID),
	})
	return err
}
