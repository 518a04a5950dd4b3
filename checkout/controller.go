package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// GenericErrorMessage is shown whenever the real failure must stay
	// with the operators.
	GenericErrorMessage = "An unexpected error occurred."
	// TimeoutErrorMessage is shown when the confirmation deadline passes.
	TimeoutErrorMessage = "The payment request timed out. Please try again."

	// DefaultConfirmTimeout bounds a single confirmation call.
	DefaultConfirmTimeout = 30 * time.Second
)

// Controller drives one checkout attempt: fetch a client secret, accept one
// submission at a time, confirm against the processor and map the response
// to a single outcome. Each mount of the payment form gets its own
// Controller; nothing is shared across attempts.
type Controller struct {
	mu           sync.Mutex
	state        State
	clientSecret string
	message      string
	successFired bool

	intents        IntentSource
	processor      Processor
	notifier       Notifier
	onSuccess      func()
	confirmTimeout time.Duration
	logger         *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier routes user-facing notifications to n.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithConfirmTimeout overrides the confirmation deadline.
func WithConfirmTimeout(d time.Duration) Option {
	return func(c *Controller) { c.confirmTimeout = d }
}

// WithLogger sets the operator log sink.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New builds a Controller. The processor client is injected here and owned
// by this instance; its lifecycle ends with the checkout attempt. onSuccess
// fires at most once, on terminal success only.
func New(intents IntentSource, processor Processor, onSuccess func(), opts ...Option) *Controller {
	c := &Controller{
		state:          StateIdle,
		intents:        intents,
		processor:      processor,
		notifier:       nopNotifier{},
		onSuccess:      onSuccess,
		confirmTimeout: DefaultConfirmTimeout,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message returns the user-visible message from the last resolution, if any.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Submitting reports whether a confirmation call is in flight.
func (c *Controller) Submitting() bool {
	return c.State() == StateSubmitting
}

// Start fetches the client secret for this attempt. Until it returns, the
// controller stays Idle and the UI shows its loading placeholder; there is
// deliberately no deadline here, the caller bounds it through ctx if needed.
func (c *Controller) Start(ctx context.Context, amount float64, currency string) error {
	secret, err := c.intents.CreateIntent(ctx, amount, currency)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientSecret = secret
	c.state = reduce(c.state, event{kind: eventSecretReady})
	return nil
}

// Submit runs one confirmation attempt and reports its outcome. The second
// return value is false when the submission was ignored: a confirmation
// already in flight, a missing client secret or payment method, or a
// resolved attempt. No retry happens anywhere in here; resubmission is the
// user's call.
func (c *Controller) Submit(ctx context.Context, method PaymentMethod) (Outcome, bool) {
	c.mu.Lock()
	if c.state != StateReady || c.processor == nil || c.clientSecret == "" || method.ID == "" {
		c.mu.Unlock()
		return Outcome{}, false
	}
	c.state = reduce(c.state, event{kind: eventSubmit})
	c.message = ""
	secret := c.clientSecret
	c.mu.Unlock()

	var outcome Outcome
	// The Submitting state must not outlive this call, whichever branch
	// produced the outcome.
	defer func() { c.resolve(outcome) }()

	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	result, err := c.processor.Confirm(ctx, secret, method)
	outcome = c.classify(result, err)
	return outcome, true
}

// classify maps a processor response onto the outcome taxonomy.
func (c *Controller) classify(result *ConfirmResult, err error) Outcome {
	if err != nil {
		var perr *ProcessorError
		switch {
		case errors.As(err, &perr) && perr.Recoverable():
			return Outcome{Kind: OutcomeRecoverable, Message: perr.Message}
		case errors.Is(err, context.DeadlineExceeded):
			c.logger.Warn("Payment confirmation timed out")
			return Outcome{Kind: OutcomeUnexpected, Message: TimeoutErrorMessage}
		default:
			// Operator detail only; the user sees the generic message.
			c.logger.Error("Payment confirmation failed", zap.Error(err))
			return Outcome{Kind: OutcomeUnexpected, Message: GenericErrorMessage}
		}
	}

	if result != nil && result.Status == StatusSucceeded {
		return Outcome{Kind: OutcomeSucceeded}
	}

	status := ""
	if result != nil {
		status = result.Status
	}
	return Outcome{Kind: OutcomePending, Status: status, Message: "Payment status: " + status}
}

// resolve applies the outcome: state transition, user message, notification
// and the one-shot success callback.
func (c *Controller) resolve(outcome Outcome) {
	c.mu.Lock()
	c.state = reduce(c.state, event{kind: eventResolved, outcome: outcome})
	c.message = outcome.Message

	fireSuccess := false
	if outcome.Kind == OutcomeSucceeded && !c.successFired {
		c.successFired = true
		fireSuccess = c.onSuccess != nil
	}
	c.mu.Unlock()

	switch outcome.Kind {
	case OutcomeSucceeded:
		if fireSuccess {
			c.onSuccess()
		}
	case OutcomePending:
		c.notifier.Warning(outcome.Message)
	case OutcomeRecoverable, OutcomeUnexpected:
		c.notifier.Error(outcome.Message)
	}
}
