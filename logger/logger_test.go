package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerWritesJSONWithService(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Level: ParseLevel("debug"), Format: "json", Output: buf})

	log.Debug().Str("method", "getMe").Msg("crypto pay request")

	assert.Contains(t, buf.String(), `"service":"cryptopay"`)
	assert.Contains(t, buf.String(), `"method":"getMe"`)
}

func TestLoggerRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{Level: zerolog.WarnLevel, Output: buf})

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevelDefaults(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("invalid"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" ERROR "))
}
