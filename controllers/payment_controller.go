package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/Sopejohn/freshmart/metrics"
	"github.com/Sopejohn/freshmart/services"
)

// IntentCreator is the processor-facing surface the controller needs.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (*stripe.PaymentIntent, error)
}

type PaymentController struct {
	Stripe  IntentCreator
	Logger  *zap.Logger
	Metrics *metrics.Client
}

type createIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// CreatePaymentIntent asks Stripe for a pending charge record and hands the
// client secret back to the caller. No state is kept here; Stripe is the
// source of truth and the caller retries by re-invoking the endpoint.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.Logger.Warn("Invalid payment intent request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A positive amount is required"})
		return
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	amountMinor := services.MinorUnits(req.Amount)

	pi, err := pc.Stripe.CreatePaymentIntent(c.Request.Context(), amountMinor, currency)
	if err != nil {
		pc.recordIntentMetric(metrics.MetricIntentFailed)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.recordIntentMetric(metrics.MetricIntentsCreated)
	// The client secret authorizes one confirmation attempt; it is returned
	// to the caller and never logged.
	c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
}

// Health reports process liveness only; it does not touch Stripe.
func (pc *PaymentController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (pc *PaymentController) recordIntentMetric(name string) {
	if !pc.Metrics.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pc.Metrics.RecordCount(ctx, name, map[string]string{"Service": "payments"})
	}()
}
