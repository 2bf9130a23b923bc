package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("stage %s: %d -> %d chars", "emoji", 10, 8) }, "[DEBUG] stage emoji: 10 -> 8 chars\n"},
		{"info", func() { Info("saved %s", "ui.theme") }, "[INFO] saved ui.theme\n"},
		{"warn", func() { Warn("clipboard unavailable") }, "[WARN] clipboard unavailable\n"},
		{"section", func() { Section("Normalise") }, "\n=== Normalise ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Zero(t, buf.Len())
}

func TestSetOutput_NilRestoresStderr(t *testing.T) {
	capture(t, false)
	SetOutput(nil)

	mu.RLock()
	defer mu.RUnlock()
	assert.Equal(t, os.Stderr, output)
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(n%2 == 0)
			Debug("concurrent %d", n)
			IsVerbose()
		}(i)
	}
	wg.Wait()
}
