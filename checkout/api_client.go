package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIClient is the IntentSource backed by the FreshMart backend's
// create-payment-intent endpoint.
type APIClient struct {
	http *resty.Client
}

// NewAPIClient targets the backend at baseURL (e.g. "http://localhost:8000").
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
	}
}

type createIntentBody struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type apiError struct {
	Error string `json:"error"`
}

// CreateIntent asks the backend for a new payment intent and returns its
// client secret.
func (c *APIClient) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	var out createIntentResponse
	var apiErr apiError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createIntentBody{Amount: amount, Currency: currency}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/create-payment-intent")
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		if apiErr.Error != "" {
			return "", fmt.Errorf("create payment intent: %s", apiErr.Error)
		}
		return "", fmt.Errorf("create payment intent: unexpected status %d", resp.StatusCode())
	}

	if out.ClientSecret == "" {
		return "", errors.New("create payment intent: missing client secret in response")
	}
	return out.ClientSecret, nil
}
