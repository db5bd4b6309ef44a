package oracle

import "fmt"

// UnavailableError means the oracle produced no usable response: retries
// exhausted, breaker open, or client setup failed. Callers degrade to the
// deterministic path.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite oracle unavailable: %v", e.Cause)
	}
	return "rewrite oracle unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError means the oracle responded but its output could not
// be decoded even section by section. Callers substitute the original
// document verbatim.
type MalformedOutputError struct {
	Reason string
	Cause  error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed oracle output: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed oracle output: %s", e.Reason)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}
