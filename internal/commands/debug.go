package commands

import "fmt"

var debugMode bool

// SetDebugMode toggles debug output for all commands
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

func debugf(format string, args ...any) {
	if debugMode {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}
