//go:build !no_zerolog

package flaterr_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/thanhminhmr/go-flaterr/flaterr"
)

func TestMarshalZerologObject(t *testing.T) {
	flat := flaterr.Capture(outerError{cause: errorString("inner")})

	var buffer bytes.Buffer
	logger := zerolog.New(&buffer)
	logger.Log().Object("error", flat).Send()

	got := strings.TrimSpace(buffer.String())
	want := `{"error":{"error":"outer","original_type":"flaterr_test.outerError",` +
		`"source":{"error":"inner","original_type":"flaterr_test.errorString"}}}`
	if got != want {
		t.Fatalf("log line = %s, want %s", got, want)
	}
}
