package flaterr

import (
	"fmt"
	"reflect"
)

// Capture flattens err into a snapshot.
//
// The snapshot records the dynamic type label and the rendered message,
// then recursively captures the causal predecessor: an Unwrap() error
// method is consulted first, then a Cause() error method for chains built
// with github.com/pkg/errors. The original error is read through the
// interface and never modified; the result is fully owned and independent
// of err's later state.
//
// Capture cannot fail. A nil err yields the zero Flat. Recursion depth
// equals the depth of err's causal chain, which is assumed finite and
// acyclic as required of well-behaved error types.
func Capture(err error) Flat {
	if err == nil {
		return Flat{}
	}
	if flat, ok := captureRegistered(err); ok {
		return flat
	}
	flat := Flat{
		originalType: typeLabel(err),
		message:      err.Error(),
	}
	if source := sourceOf(err); source != nil {
		flat.source = Capture(source)
	}
	return flat
}

// Recovered flattens a value obtained from recover(). Errors are captured
// as usual; any other value is labelled by its dynamic type with its
// fmt.Sprint rendering as the message. A nil value yields the zero Flat.
func Recovered(recovered any) Flat {
	if recovered == nil {
		return Flat{}
	}
	if err, ok := recovered.(error); ok {
		return Capture(err)
	}
	return Flat{
		originalType: typeLabel(recovered),
		message:      fmt.Sprint(recovered),
	}
}

func typeLabel(value any) string {
	if typ := reflect.TypeOf(value); typ != nil {
		return typ.String()
	}
	return "<nil>"
}

func sourceOf(err error) error {
	switch wrapped := err.(type) {
	case interface{ Unwrap() error }:
		return wrapped.Unwrap()
	case interface{ Cause() error }:
		return wrapped.Cause()
	}
	// Joined errors (Unwrap() []error) expose no single predecessor and
	// are captured as leaves.
	return nil
}
