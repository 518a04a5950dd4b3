package checkout

// OutcomeKind classifies how one confirmation attempt resolved.
type OutcomeKind int

const (
	// OutcomeUnknown is the zero value; no resolution has happened.
	OutcomeUnknown OutcomeKind = iota
	// OutcomeSucceeded means the processor reported status "succeeded".
	OutcomeSucceeded
	// OutcomePending covers non-error statuses other than "succeeded"
	// (processing, requires_action). Informational, not a failure.
	OutcomePending
	// OutcomeRecoverable is a user-correctable payment failure; the
	// processor's message is surfaced verbatim.
	OutcomeRecoverable
	// OutcomeUnexpected covers everything else; only a generic message
	// reaches the user.
	OutcomeUnexpected
)

// Outcome is the single result of a confirmation attempt.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Status  string // raw processor status, set for OutcomePending
}

// State is the checkout attempt lifecycle.
type State int

const (
	// StateIdle: no client secret yet.
	StateIdle State = iota
	// StateReady: secret obtained, submission allowed.
	StateReady
	// StateSubmitting: confirmation in flight, submission blocked.
	StateSubmitting
	// StateResolved: the attempt succeeded; terminal.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

type eventKind int

const (
	eventSecretReady eventKind = iota
	eventSubmit
	eventResolved
)

type event struct {
	kind    eventKind
	outcome Outcome
}

// reduce is the single transition function. Transitions not listed here are
// no-ops: a submit while already submitting, a late secret after resolution
// and similar races all leave the state unchanged.
func reduce(s State, ev event) State {
	switch {
	case s == StateIdle && ev.kind == eventSecretReady:
		return StateReady
	case s == StateReady && ev.kind == eventSubmit:
		return StateSubmitting
	case s == StateSubmitting && ev.kind == eventResolved:
		if ev.outcome.Kind == OutcomeSucceeded {
			return StateResolved
		}
		// Errors and pending statuses re-enable submission; the intent is
		// not re-polled.
		return StateReady
	}
	return s
}
