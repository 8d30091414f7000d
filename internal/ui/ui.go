package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color constants
const (
	ColorKey      = "\033[38;2;136;136;136m" // medium gray for resource keys
	ColorCategory = "\033[38;2;159;212;159m" // bright green for category names
	ColorPath     = "\033[38;2;97;97;97m"    // neutral dark gray for file paths
	ColorWarn     = "\033[38;2;212;159;97m"  // amber for warnings
	ColorReset    = "\033[0m"                // reset to default
)

// Terminal defaults
const (
	DefaultTermWidth = 80
)

// ============================================================================
// Terminal Utilities
// ============================================================================

// GetTerminalWidth returns the current terminal width, or DefaultTermWidth if unavailable.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTermWidth
	}
	return width
}

// TruncateString truncates a string to maxLen runes (Unicode-safe).
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// Confirm prompts for a yes/no answer on stdin; anything but y/yes is no.
func Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ============================================================================
// Formatting Helpers
// ============================================================================

// FormatCategory formats a category header as "meshes (3 orphaned)".
func FormatCategory(category string, count int) string {
	return fmt.Sprintf("%s%s%s (%d orphaned)", ColorCategory, category, ColorReset, count)
}

// FormatOrphan formats one orphaned resource as "  [key] missing/path.glb",
// with the path truncated to the terminal width.
func FormatOrphan(key, file string) string {
	// Leave room for the indent, brackets, and spacing around the key
	budget := GetTerminalWidth() - len(key) - 6
	if budget > 0 {
		file = TruncateString(file, budget)
	}
	return fmt.Sprintf("  %s[%s]%s %s%s%s", ColorKey, key, ColorReset, ColorPath, file, ColorReset)
}

// FormatHint formats a replacement suggestion as "      ~ assets/rock2.glb".
func FormatHint(path string) string {
	return fmt.Sprintf("      %s~ %s%s", ColorPath, path, ColorReset)
}

// Warnf prints an amber warning line to stderr.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ColorWarn+"Warning: "+format+ColorReset+"\n", args...)
}
