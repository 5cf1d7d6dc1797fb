package sigcore

import "errors"

// Error taxonomy for the core.  Configuration failures are returned to the
// caller; steady-state anomalies (FixedModeMutation, InvalidState) are
// logged and the primitive keeps running with a neutral output instead of
// aborting -- see log.go.

// ErrConfigRejected wraps an init-time invariant violation: bmin > bmax,
// an unrecognized assembly kind, or a fixed NCQO with a zero or negative
// frequency. Negative frequencies elsewhere and arm filter orders are not
// checked and never produce it.
var ErrConfigRejected = errors.New("sigcore: configuration rejected")

// ErrStreamOverrun is returned by SymbolStream.Read when the writer has
// lapped the reader's cursor by more than the stream's capacity.  Read has
// already moved the cursor to SymbolStream.Tell(); the reader resumes from
// there.
var ErrStreamOverrun = errors.New("sigcore: symbol stream overrun")

func configError(reason string) error {
	return &configRejectedError{reason: reason}
}

type configRejectedError struct {
	reason string
}

func (e *configRejectedError) Error() string {
	return "sigcore: configuration rejected: " + e.reason
}

func (e *configRejectedError) Unwrap() error {
	return ErrConfigRejected
}
