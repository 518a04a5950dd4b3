package checkout

import "context"

// PaymentMethod identifies the tokenized payment method collected from the
// customer. Raw card details never pass through this package.
type PaymentMethod struct {
	ID string
}

// ConfirmResult is the processor's answer to a confirmation call.
type ConfirmResult struct {
	IntentID string
	Status   string
}

// StatusSucceeded is the only status treated as terminal success.
const StatusSucceeded = "succeeded"

// ErrorType mirrors the processor's error taxonomy.
type ErrorType string

const (
	ErrorTypeCard       ErrorType = "card_error"
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeAPI        ErrorType = "api_error"
)

// ProcessorError is a structured rejection from the processor.
type ProcessorError struct {
	Type    ErrorType
	Message string
}

func (e *ProcessorError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// Recoverable reports whether the user can fix this themselves (declined or
// invalid card details).
func (e *ProcessorError) Recoverable() bool {
	return e.Type == ErrorTypeCard || e.Type == ErrorTypeValidation
}

// Processor confirms a payment intent identified by its client secret.
type Processor interface {
	Confirm(ctx context.Context, clientSecret string, method PaymentMethod) (*ConfirmResult, error)
}

// IntentSource obtains a client secret for a new checkout attempt.
type IntentSource interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (string, error)
}

// Notifier receives user-facing notifications (the toast surface in the
// dashboard UI).
type Notifier interface {
	Warning(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Warning(string) {}
func (nopNotifier) Error(string)   {}
