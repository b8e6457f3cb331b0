package resolver

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Debug("resolved reference", "ref", "#/definitions/droplet")
	out := buf.String()
	assert.Contains(t, out, "resolved reference")
	assert.Contains(t, out, "#/definitions/droplet")

	buf.Reset()
	adapter.With("pass", 2).Warn("using fallback")
	out = buf.String()
	assert.Contains(t, out, "using fallback")
	assert.Contains(t, out, `"pass":2`)
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("welding complete", "refs", 42)
	out := buf.String()
	assert.Contains(t, out, `"message":"welding complete"`)
	assert.Contains(t, out, `"refs":42`)

	buf.Reset()
	adapter.With("source", "api.yaml").Error("weld failed")
	out = buf.String()
	assert.Contains(t, out, `"source":"api.yaml"`)
	assert.Contains(t, out, `"level":"error"`)
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log.Debug("nothing")
	log.Info("nothing")
	log.Warn("nothing")
	log.Error("nothing")
	assert.Equal(t, NopLogger{}, log.With("k", "v"))
}
