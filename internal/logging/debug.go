package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnvVar enables debug output when set to any non-empty value.
const DebugEnvVar = "TODO_DEBUG"

var debugOutput io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(debugOutput, format, args...)
	}
}
