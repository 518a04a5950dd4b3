package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

// StripeProcessor confirms payment intents through an explicitly constructed
// Stripe client. Nothing here touches the package-global stripe.Key; two
// processors with different keys can coexist in one process.
type StripeProcessor struct {
	api *client.API
}

// NewStripeProcessor wraps an existing Stripe API client.
func NewStripeProcessor(api *client.API) *StripeProcessor {
	return &StripeProcessor{api: api}
}

// NewStripeProcessorWithKey builds its own client from a publishable or
// secret key.
func NewStripeProcessorWithKey(key string) *StripeProcessor {
	return &StripeProcessor{api: client.New(key, nil)}
}

func (p *StripeProcessor) Confirm(ctx context.Context, clientSecret string, method PaymentMethod) (*ConfirmResult, error) {
	intentID, ok := intentIDFromSecret(clientSecret)
	if !ok {
		// Do not echo the secret anywhere, including errors.
		return nil, fmt.Errorf("malformed client secret")
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(method.ID),
	}
	// v80 has no ClientSecret field on PaymentIntentConfirmParams; send the
	// same client_secret form value through the extra-params mechanism.
	params.AddExtra("client_secret", clientSecret)

	pi, err := p.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &ConfirmResult{IntentID: pi.ID, Status: string(pi.Status)}, nil
}

// intentIDFromSecret extracts "pi_123" from "pi_123_secret_456".
func intentIDFromSecret(secret string) (string, bool) {
	id, _, found := strings.Cut(secret, "_secret")
	if !found || id == "" {
		return "", false
	}
	return id, true
}

// mapStripeError converts the SDK's error into the package taxonomy so the
// controller can classify it without importing stripe.
func mapStripeError(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		msg := serr.Msg
		if msg == "" {
			msg = "Payment failed"
		}
		return &ProcessorError{Type: ErrorType(serr.Type), Message: msg}
	}
	return err
}
