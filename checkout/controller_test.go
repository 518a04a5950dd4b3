package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sopejohn/freshmart/checkout"
)

// ---- mock intent source ----

type mockIntentSource struct {
	secret string
	err    error
	calls  int
}

func (m *mockIntentSource) CreateIntent(_ context.Context, amount float64, currency string) (string, error) {
	m.calls++
	return m.secret, m.err
}

// ---- mock processor ----

type mockProcessor struct {
	mu     sync.Mutex
	result *checkout.ConfirmResult
	err    error
	calls  int
	block  chan struct{} // when non-nil, Confirm waits until closed
}

func (m *mockProcessor) Confirm(ctx context.Context, clientSecret string, method checkout.PaymentMethod) (*checkout.ConfirmResult, error) {
	m.mu.Lock()
	m.calls++
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.result, m.err
}

func (m *mockProcessor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// ---- recording notifier ----

type recordingNotifier struct {
	mu       sync.Mutex
	warnings []string
	errs     []string
}

func (n *recordingNotifier) Warning(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, msg)
}

// ---- helpers ----

func readyController(t *testing.T, proc checkout.Processor, onSuccess func(), opts ...checkout.Option) *checkout.Controller {
	t.Helper()
	intents := &mockIntentSource{secret: "pi_123_secret_456"}
	c := checkout.New(intents, proc, onSuccess, opts...)
	assert.NoError(t, c.Start(context.Background(), 24.99, "usd"))
	assert.Equal(t, checkout.StateReady, c.State())
	return c
}

var visa = checkout.PaymentMethod{ID: "pm_card_visa"}

// ---- lifecycle ----

func TestStart_TransitionsIdleToReady(t *testing.T) {
	intents := &mockIntentSource{secret: "pi_123_secret_456"}
	c := checkout.New(intents, &mockProcessor{}, nil)

	assert.Equal(t, checkout.StateIdle, c.State())
	assert.NoError(t, c.Start(context.Background(), 10.00, "usd"))
	assert.Equal(t, checkout.StateReady, c.State())
}

func TestStart_FetchFailureStaysIdle(t *testing.T) {
	intents := &mockIntentSource{err: errors.New("backend unreachable")}
	c := checkout.New(intents, &mockProcessor{}, nil)

	assert.Error(t, c.Start(context.Background(), 10.00, "usd"))
	assert.Equal(t, checkout.StateIdle, c.State())
}

func TestSubmit_BeforeStartIsNoOp(t *testing.T) {
	proc := &mockProcessor{}
	c := checkout.New(&mockIntentSource{secret: "pi_1_secret_2"}, proc, nil)

	_, ok := c.Submit(context.Background(), visa)
	assert.False(t, ok)
	assert.Zero(t, proc.callCount())
}

func TestSubmit_WithoutPaymentMethodIsNoOp(t *testing.T) {
	proc := &mockProcessor{}
	c := readyController(t, proc, nil)

	_, ok := c.Submit(context.Background(), checkout.PaymentMethod{})
	assert.False(t, ok)
	assert.Zero(t, proc.callCount())
	assert.Equal(t, checkout.StateReady, c.State())
}

// ---- outcome mapping ----

func TestSubmit_SucceededFiresCallbackOnceWithNoMessage(t *testing.T) {
	proc := &mockProcessor{result: &checkout.ConfirmResult{IntentID: "pi_123", Status: "succeeded"}}
	notifier := &recordingNotifier{}
	successCount := 0
	c := readyController(t, proc, func() { successCount++ }, checkout.WithNotifier(notifier))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeSucceeded, outcome.Kind)
	assert.Equal(t, 1, successCount)
	assert.Empty(t, c.Message())
	assert.Empty(t, notifier.errs)
	assert.Empty(t, notifier.warnings)
	assert.Equal(t, checkout.StateResolved, c.State())
	assert.False(t, c.Submitting())
}

func TestSubmit_AfterSuccessIsNoOp(t *testing.T) {
	proc := &mockProcessor{result: &checkout.ConfirmResult{Status: "succeeded"}}
	successCount := 0
	c := readyController(t, proc, func() { successCount++ })

	_, ok := c.Submit(context.Background(), visa)
	assert.True(t, ok)

	_, ok = c.Submit(context.Background(), visa)
	assert.False(t, ok)
	assert.Equal(t, 1, successCount)
	assert.Equal(t, 1, proc.callCount())
}

func TestSubmit_CardErrorShowsProcessorMessageVerbatim(t *testing.T) {
	proc := &mockProcessor{err: &checkout.ProcessorError{
		Type:    checkout.ErrorTypeCard,
		Message: "Your card was declined.",
	}}
	notifier := &recordingNotifier{}
	successCount := 0
	c := readyController(t, proc, func() { successCount++ }, checkout.WithNotifier(notifier))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeRecoverable, outcome.Kind)
	assert.Equal(t, "Your card was declined.", outcome.Message)
	assert.Equal(t, "Your card was declined.", c.Message())
	assert.Equal(t, []string{"Your card was declined."}, notifier.errs)
	assert.Zero(t, successCount)
	// Submission re-enabled for a corrected retry.
	assert.Equal(t, checkout.StateReady, c.State())
	assert.False(t, c.Submitting())
}

func TestSubmit_ValidationErrorIsRecoverable(t *testing.T) {
	proc := &mockProcessor{err: &checkout.ProcessorError{
		Type:    checkout.ErrorTypeValidation,
		Message: "Your card number is incomplete.",
	}}
	c := readyController(t, proc, nil)

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeRecoverable, outcome.Kind)
	assert.Equal(t, "Your card number is incomplete.", outcome.Message)
}

func TestSubmit_OtherProcessorErrorShowsGenericMessage(t *testing.T) {
	proc := &mockProcessor{err: &checkout.ProcessorError{
		Type:    checkout.ErrorTypeAPI,
		Message: "internal backend detail that must not leak",
	}}
	notifier := &recordingNotifier{}
	c := readyController(t, proc, nil, checkout.WithNotifier(notifier))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeUnexpected, outcome.Kind)
	assert.Equal(t, checkout.GenericErrorMessage, outcome.Message)
	assert.NotContains(t, c.Message(), "internal backend detail")
	assert.Equal(t, []string{checkout.GenericErrorMessage}, notifier.errs)
	assert.Equal(t, checkout.StateReady, c.State())
}

func TestSubmit_TransportErrorShowsGenericMessage(t *testing.T) {
	proc := &mockProcessor{err: errors.New("connection reset by peer")}
	c := readyController(t, proc, nil)

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeUnexpected, outcome.Kind)
	assert.Equal(t, checkout.GenericErrorMessage, outcome.Message)
	assert.False(t, c.Submitting())
}

func TestSubmit_PendingStatusWarnsAndReenables(t *testing.T) {
	proc := &mockProcessor{result: &checkout.ConfirmResult{Status: "processing"}}
	notifier := &recordingNotifier{}
	successCount := 0
	c := readyController(t, proc, func() { successCount++ }, checkout.WithNotifier(notifier))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomePending, outcome.Kind)
	assert.Equal(t, "processing", outcome.Status)
	assert.Equal(t, "Payment status: processing", c.Message())
	assert.Equal(t, []string{"Payment status: processing"}, notifier.warnings)
	assert.Zero(t, successCount)
	assert.Equal(t, checkout.StateReady, c.State())
}

func TestSubmit_TimeoutShowsTimeoutMessage(t *testing.T) {
	proc := &mockProcessor{block: make(chan struct{})}
	c := readyController(t, proc, nil, checkout.WithConfirmTimeout(20*time.Millisecond))

	outcome, ok := c.Submit(context.Background(), visa)

	assert.True(t, ok)
	assert.Equal(t, checkout.OutcomeUnexpected, outcome.Kind)
	assert.Equal(t, checkout.TimeoutErrorMessage, outcome.Message)
	assert.False(t, c.Submitting())
}

// ---- double submission ----

func TestSubmit_SecondSubmissionWhileInFlightIsNoOp(t *testing.T) {
	block := make(chan struct{})
	proc := &mockProcessor{
		result: &checkout.ConfirmResult{Status: "succeeded"},
		block:  block,
	}
	c := readyController(t, proc, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := c.Submit(context.Background(), visa)
		assert.True(t, ok)
	}()

	// Wait until the first submission is in flight.
	assert.Eventually(t, c.Submitting, time.Second, time.Millisecond)

	_, ok := c.Submit(context.Background(), visa)
	assert.False(t, ok, "second submission must be ignored while one is in flight")

	close(block)
	<-done

	assert.Equal(t, 1, proc.callCount())
	assert.False(t, c.Submitting())
}
