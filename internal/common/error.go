package common

// Error is a domain error: Msg is safe to show to API callers and Kind is one
// of the sentinel kinds above, which decides how transports report it.
type Error struct {
	Kind error
	Msg  string
}

// NewError returns a domain error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func (e *Error) Error() string { return e.Msg }

// Unwrap lets errors.Is(err, ErrorNotFound) and friends match on the kind.
func (e *Error) Unwrap() error { return e.Kind }
