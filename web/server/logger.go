package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/jeremzan/ray-tracing/pkg/core"
)

// WebLogger implements core.Logger by writing to the server log, tagged
// with the render it belongs to
type WebLogger struct {
	renderID string
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", wl.renderID, message)
}
