package proposal

import "fmt"

// DecodeError reports a structurally invalid answer, solution or result
// details block. It carries the offending raw string.
type DecodeError struct {
	What string // "answer", "solution" or "correctness"
	Raw  string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot decode %s %q", e.What, e.Raw)
	}
	return fmt.Sprintf("cannot decode %s %q: %v", e.What, e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(what, raw string, err error) *DecodeError {
	return &DecodeError{What: what, Raw: raw, Err: err}
}
