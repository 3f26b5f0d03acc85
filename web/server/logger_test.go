package server

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestWebLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	}()

	logger := NewWebLogger("test-render-123")
	logger.Printf("Rendering %dx%d\n", 4, 3)

	got := buf.String()
	if got != "[test-render-123] Rendering 4x3\n" {
		t.Errorf("Unexpected log line %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("Expected a single line, got %q", got)
	}
}
