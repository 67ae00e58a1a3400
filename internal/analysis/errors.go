package analysis

import "fmt"

// Kind classifies why an analysis failed.
type Kind int

const (
	KindInvalidIdentifier Kind = iota + 1
	KindNotFound
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindInvalidIdentifier:
		return "invalid identifier"
	case KindNotFound:
		return "not found or private"
	case KindTransport:
		return "transport failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the only error type returned by Analyzer methods.
type Error struct {
	Kind   Kind
	Reason string // human readable
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}
