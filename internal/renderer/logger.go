package renderer

import (
	"fmt"

	"github.com/nordlicht/spectra/internal/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns a core.Logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
