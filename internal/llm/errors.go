package llm

import "fmt"

// ErrBackendUnavailable indicates the backend could not be reached or
// answered with a non-2xx status.
type ErrBackendUnavailable struct {
	Err error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation backend unavailable: %v", e.Err)
	}
	return "generation backend unavailable"
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrInvalidContent indicates the backend answered but the content
// violated the wire contract: missing or invalid JSON, wrong option
// count, out-of-range index. Raw carries the offending text for
// diagnostics.
type ErrInvalidContent struct {
	Raw string
	Err error
}

func (e *ErrInvalidContent) Error() string {
	return fmt.Sprintf("invalid backend content: %v", e.Err)
}

func (e *ErrInvalidContent) Unwrap() error { return e.Err }

// ErrContentPolicy indicates the content parsed but contains
// characters outside the allowed script (language-purity filter).
type ErrContentPolicy struct {
	Raw       string
	Offending rune
	Field     string
}

func (e *ErrContentPolicy) Error() string {
	return fmt.Sprintf("content policy violation in %s: disallowed character %q", e.Field, e.Offending)
}
