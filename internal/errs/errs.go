// Package errs defines the error taxonomy shared by every proof package in
// svmzkp. All recoverable failures surface as a *Error of one of the four
// kinds below, including a vector whose length does not match its generator
// set (InvalidGeneratorsLength). Invariant violations inside the
// inner-product argument and ristretto.MultiMul (mismatched vector lengths,
// non-power-of-two n) indicate caller bugs and panic instead, since untrusted input
// can only reach the core through deserialization, which validates lengths
// first.
package errs

import "fmt"

// Kind classifies a recoverable proof failure.
type Kind int

const (
	// FormatError signals malformed serialization: a point that fails to
	// decompress, a non-canonical scalar encoding, or a byte length that
	// doesn't match the expected layout.
	FormatError Kind = iota
	// InvalidCommitment signals that a transcript received the group
	// identity where a non-trivial commitment was required.
	InvalidCommitment
	// InvalidGeneratorsLength signals a vector whose length does not match
	// its generator set.
	InvalidGeneratorsLength
	// VerificationError signals that a proof's final multi-scalar identity
	// check failed.
	VerificationError
)

func (k Kind) String() string {
	switch k {
	case FormatError:
		return "FormatError"
	case InvalidCommitment:
		return "InvalidCommitment"
	case InvalidGeneratorsLength:
		return "InvalidGeneratorsLength"
	case VerificationError:
		return "VerificationError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error value returned by every proof operation in
// this module.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is lets errors.Is match on Kind alone, e.g. errors.Is(err, errs.New(errs.VerificationError, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
