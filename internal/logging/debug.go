package logging

import (
	"os"
)

// DebugEnvVar forces debug output when set to any non-empty value
const DebugEnvVar = "ORG_DEBUG"

// DebugEnabled returns true if debug mode is enabled via ORG_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}
