package chunk

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO              ErrKind = iota // byte source failed (read/seek)
	ErrKindParse                          // structural inconsistency (cursor vs declared size)
	ErrKindSizeOverflow                   // declared size not representable as a region bound
	ErrKindUnexpectedValue                // decoded value differs from the expected one
	ErrKindUnknownChunk                   // well-formed chunk no handler accepts
	ErrKindUnimplemented                  // optional collaborator hook not provided
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindParse:
		return "parse"
	case ErrKindSizeOverflow:
		return "size-overflow"
	case ErrKindUnexpectedValue:
		return "unexpected-value"
	case ErrKindUnknownChunk:
		return "unknown-chunk"
	case ErrKindUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is a *Error of the given
// kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or ErrKindIO
// for errors that never passed through this package (a plain I/O failure is
// the only way that happens).
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindIO
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnimplemented indicates an optional hook (e.g. a profile's size
	// guesser) was invoked but never provided.
	ErrUnimplemented = &Error{Kind: ErrKindUnimplemented, Msg: "not implemented"}
	// ErrUnknownChunk indicates a structurally valid chunk that no handler
	// recognizes. Body functions return it to fail strict parses.
	ErrUnknownChunk = &Error{Kind: ErrKindUnknownChunk, Msg: "unknown chunk"}
)
