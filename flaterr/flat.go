package flaterr

import (
	"fmt"
	"io"
)

// Flat is a point-in-time snapshot of an error that does not satisfy
// Extended, flattened into a form that does.
//
// A snapshot stores the error's message, a best-effort label of its
// dynamic type, and, recursively, a snapshot of its causal predecessor.
// All fields are immutable after Capture, so assignment is cloning and ==
// is structural equality over message, label, and the whole source chain.
//
// The source is held as a Flat value boxed in an error field rather than a
// pointer; interface comparison then makes == recurse through the chain
// instead of comparing allocation identity.
type Flat struct {
	originalType string
	message      string
	source       error
}

// Error returns the message of the captured error, exactly as it rendered
// at capture time.
func (e Flat) Error() string {
	return e.message
}

// Unwrap exposes the source snapshot to errors.Is, errors.Unwrap, and
// other chain walkers. It returns nil when the captured error had no
// causal predecessor.
func (e Flat) Unwrap() error {
	return e.source
}

// FlatSource returns the snapshot of the captured error's causal
// predecessor, if it had one.
func (e Flat) FlatSource() (Flat, bool) {
	source, ok := e.source.(Flat)
	return source, ok
}

// OriginalType returns the label of the captured error's dynamic type, as
// reported by the reflect package. The label is diagnostic only: it is
// non-empty for any captured value but not guaranteed unique or stable
// across toolchain versions.
func (e Flat) OriginalType() string {
	return e.originalType
}

// Format renders the snapshot. The plain forms %v, %s, and Error() print
// the message alone. The verbose forms %+v and %#v append the source and
// the original type:
//
//	open /etc/passwd: permission denied (source: permission denied, original type: `*fs.PathError`)
//
// The source clause shows the predecessor's compact form only; verbosity
// is a single-level disclosure and does not propagate down the chain.
func (e Flat) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v':
		if state.Flag('+') || state.Flag('#') {
			if source, ok := e.FlatSource(); ok {
				fmt.Fprintf(state, "%s (source: %s, original type: `%s`)", e.message, source.message, e.originalType)
			} else {
				fmt.Fprintf(state, "%s (original type: `%s`)", e.message, e.originalType)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(state, e.message)
	case 'q':
		fmt.Fprintf(state, "%q", e.message)
	}
}
