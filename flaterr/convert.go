package flaterr

import (
	"reflect"
	"sync"
)

// Converter returns the conversion function from a concrete error type to
// its snapshot. It exists for plugging into mapping layers and decode
// pipelines that expect a func(E) T conversion; the returned function is
// Capture with a narrowed argument type:
//
//	toFlat := flaterr.Converter[*fs.PathError]()
func Converter[E error]() func(E) Flat {
	return func(err E) Flat {
		return Capture(err)
	}
}

// Register installs a custom conversion for the concrete error type E.
// Capture consults registered conversions, keyed by dynamic type, before
// its default rendering. This applies to predecessors found mid-chain too.
//
// E must be the concrete dynamic type of the errors to convert (a pointer
// type for pointer-typed errors); registering an interface type never
// matches. Registration is process-global and safe for concurrent use
// with Capture.
func Register[E error](convert func(E) Flat) {
	key := reflect.TypeOf((*E)(nil)).Elem()
	conversions.put(key, func(err error) Flat { return convert(err.(E)) })
}

func captureRegistered(err error) (Flat, bool) {
	convert, ok := conversions.get(reflect.TypeOf(err))
	if !ok {
		return Flat{}, false
	}
	return convert(err), true
}

var conversions conversionMap

type conversionMap struct {
	inner sync.Map
}

func (m *conversionMap) get(key reflect.Type) (convert func(error) Flat, exists bool) {
	rawValue, exists := m.inner.Load(key)
	if !exists {
		return nil, exists
	}
	return rawValue.(func(error) Flat), exists
}

func (m *conversionMap) put(key reflect.Type, convert func(error) Flat) {
	m.inner.Store(key, convert)
}
