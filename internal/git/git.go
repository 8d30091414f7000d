package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsRepo reports whether dir is inside a git work tree
func IsRepo(dir string) bool {
	out, err := runGitCommand(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// IsDirty reports whether path (relative to dir) has uncommitted changes
func IsDirty(dir, path string) bool {
	out, err := runGitCommand(dir, "status", "--porcelain", "--", path)
	return err == nil && strings.TrimSpace(out) != ""
}

// runGitCommand runs a git command in the given directory and returns output
func runGitCommand(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}

	return string(output), nil
}
