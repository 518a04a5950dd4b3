package services

import (
	"context"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
)

// StripeService wraps an explicitly constructed Stripe API client. The key
// is held by the client instance rather than the package-global stripe.Key,
// so independent instances never share configuration.
type StripeService struct {
	api    *client.API
	logger *zap.Logger
}

func NewStripeService(secretKey string, logger *zap.Logger) *StripeService {
	return &StripeService{
		api:    client.New(secretKey, nil),
		logger: logger,
	}
}

// CreatePaymentIntent creates a pending charge record with the processor and
// returns it. The amount must already be in minor units.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		s.logger.Warn("Stripe payment intent creation failed",
			zap.Int64("amount_minor", amountMinor),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Stripe payment intent created",
		zap.String("payment_intent_id", pi.ID),
		zap.Int64("amount_minor", amountMinor),
		zap.String("currency", currency),
	)
	return pi, nil
}
