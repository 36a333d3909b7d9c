package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestZapLoggerFormatsMessages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapFromLogger(zap.New(core))

	l.Info("room %d checked out", 101)
	l.Error("backup failed: %s", "disk full")
	l.Debug("cache miss %q", "rooms:list")

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, "room 101 checked out", entries[0].Message)
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
		assert.Equal(t, `cache miss "rooms:list"`, entries[2].Message)
	}
}

func TestNewPlainUsesDefaultLogger(t *testing.T) {
	_, ok := New("info", "plain", "orionhotel").(*DefaultLogger)
	assert.True(t, ok)
	assert.NotNil(t, Nop())
}
