package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sopejohn/freshmart/checkout"
)

func TestAPIClient_CreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create-payment-intent", r.URL.Path)

		var body struct {
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 24.99, body.Amount)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"clientSecret": "secret_abc"})
	}))
	defer srv.Close()

	client := checkout.NewAPIClient(srv.URL)
	secret, err := client.CreateIntent(context.Background(), 24.99, "usd")

	assert.NoError(t, err)
	assert.Equal(t, "secret_abc", secret)
}

func TestAPIClient_CreateIntent_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "A positive amount is required"})
	}))
	defer srv.Close()

	client := checkout.NewAPIClient(srv.URL)
	secret, err := client.CreateIntent(context.Background(), -1, "usd")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "A positive amount is required")
	assert.Empty(t, secret)
}

func TestAPIClient_CreateIntent_MissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := checkout.NewAPIClient(srv.URL)
	_, err := client.CreateIntent(context.Background(), 10, "usd")

	assert.Error(t, err)
}

// End-to-end: intent fetched over HTTP, confirmation succeeded.
func TestCheckout_EndToEnd_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"clientSecret": "secret_abc"})
	}))
	defer srv.Close()

	proc := &mockProcessor{result: &checkout.ConfirmResult{Status: "succeeded"}}
	notifier := &recordingNotifier{}
	successCount := 0

	c := checkout.New(checkout.NewAPIClient(srv.URL), proc, func() { successCount++ },
		checkout.WithNotifier(notifier))

	assert.NoError(t, c.Start(context.Background(), 24.99, "usd"))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeSucceeded, outcome.Kind)
	assert.Equal(t, 1, successCount)
	assert.Empty(t, c.Message())
}

// End-to-end: declined card surfaces the processor message, no success.
func TestCheckout_EndToEnd_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"clientSecret": "secret_abc"})
	}))
	defer srv.Close()

	proc := &mockProcessor{err: &checkout.ProcessorError{
		Type:    checkout.ErrorTypeCard,
		Message: "Your card was declined.",
	}}
	successCount := 0

	c := checkout.New(checkout.NewAPIClient(srv.URL), proc, func() { successCount++ })

	assert.NoError(t, c.Start(context.Background(), 24.99, "usd"))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeRecoverable, outcome.Kind)
	assert.Equal(t, "Your card was declined.", c.Message())
	assert.Zero(t, successCount)
}
