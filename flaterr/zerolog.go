//go:build !no_zerolog

package flaterr

import (
	"github.com/rs/zerolog"
)

func (e Flat) MarshalZerologObject(event *zerolog.Event) {
	event.Str("error", e.message).Str("original_type", e.originalType)
	if source, ok := e.FlatSource(); ok {
		event.Object("source", source)
	}
}
