// Package flaterr captures arbitrary errors into flat, immutable snapshots
// with value semantics.
//
// Error sets built from comparable value types can be compared with ==,
// copied by assignment, and used as map keys. Many error types cannot be
// used this way: *os.PathError, *exec.ExitError, or any fmt.Errorf chain
// compare by pointer identity, not by content. Flat captures the message
// and causal chain of such an error into a snapshot that does have value
// semantics, at the cost of losing the original type's behaviour.
package flaterr

// Extended marks error types that are usable directly as comparable error
// values, without flattening.
//
// The contract is structural and has no methods of its own: a type
// qualifies when it behaves as an error and carries value semantics, so
// that == against another instance is meaningful equality and assignment
// yields an independent copy. Any comparable error type satisfies Extended
// automatically; there is no opt-in step.
//
// Extended is a constraint, not a runtime interface. Use it to bound
// helpers that require value-typed errors:
//
//	func dedupe[E flaterr.Extended](errs []E) []E { ... }
type Extended interface {
	comparable
	error
}

func assertExtended[E Extended]() {}

// type check: Flat itself satisfies Extended
var _ = assertExtended[Flat]
