// Package live fetches best-effort status for a project: last git
// commit, docker container state, newest file mtime. Every lookup is
// bounded by a context timeout and degrades to a placeholder string on
// any failure; a missing binary or a dead SSH host must never block
// or break the dashboard.
package live

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Placeholder is returned when a lookup has nothing to report.
const Placeholder = "—"

// Timeout bounds every external process call.
const Timeout = 5 * time.Second

// GitActivity returns the most recent commit with a relative age, like
// "abc1234 fix the thing  (2d ago)". Degrades to "no repo",
// "no commits", "git not found", or the placeholder.
func GitActivity(ctx context.Context, codePath string) string {
	if codePath == "" {
		return Placeholder
	}
	if info, err := os.Stat(filepath.Join(codePath, ".git")); err != nil || !info.IsDir() {
		return "no repo"
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", "-C", codePath,
		"log", "--oneline", "-1", "--format=%h %s%n%ct")
	out, err := cmd.Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "git not found"
		}
		if ctx.Err() != nil {
			return Placeholder
		}
		return "no commits"
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 || lines[0] == "" {
		return "no commits"
	}
	summary := lines[0]
	epoch, convErr := strconv.ParseInt(strings.TrimSpace(lines[1]), 10, 64)
	if convErr != nil {
		return summary
	}
	ago := time.Since(time.Unix(epoch, 0))
	return fmt.Sprintf("%s  (%s)", summary, relativeTime(ago))
}

// GitBranch returns the current branch name, or "".
func GitBranch(ctx context.Context, codePath string) string {
	if codePath == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", "-C", codePath, "rev-parse", "--abbrev-ref", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// relativeTime renders a duration as a coarse human age.
func relativeTime(d time.Duration) string {
	seconds := int64(d.Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", seconds/86400)
	case seconds < 2592000:
		return fmt.Sprintf("%dw ago", seconds/604800)
	default:
		return fmt.Sprintf("%dmo ago", seconds/2592000)
	}
}
