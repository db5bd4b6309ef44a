package pipeline

import "fmt"

// InputTooLargeError means the combined resume and job-description text
// exceeds the configured ceiling. It is fatal: no stage runs, nothing is
// retried.
type InputTooLargeError struct {
	Chars int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d characters, limit is %d", e.Chars, e.Limit)
}
