package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashkm/whatdoing/internal/live"
)

// liveInfo is the best-effort enrichment shown on the project screen.
type liveInfo struct {
	Modified string
	Git      string
	Branch   string
	Docker   string
}

// liveMsg carries a finished lookup back to Update. gen ties it to the
// navigation event that requested it; stale generations are dropped.
type liveMsg struct {
	gen  int
	info liveInfo
}

// fetchLive kicks off the git/docker/mtime lookups for the current
// project in the background. Each lookup is individually bounded by
// live.Timeout, so the whole command finishes quickly even when a
// remote docker host is unreachable.
func (a *App) fetchLive() tea.Cmd {
	if a.proj == nil {
		return nil
	}
	a.liveGen++
	gen := a.liveGen
	codePath := a.proj.CodePath
	dockerName := a.proj.DockerName
	host := a.cfg.DockerHost

	a.liveInfo = liveInfo{
		Modified: "...",
		Git:      "...",
		Docker:   "...",
	}

	return func() tea.Msg {
		ctx := context.Background()
		return liveMsg{
			gen: gen,
			info: liveInfo{
				Modified: live.LastModified(codePath),
				Git:      live.GitActivity(ctx, codePath),
				Branch:   live.GitBranch(ctx, codePath),
				Docker:   live.DockerStatus(ctx, dockerName, host),
			},
		}
	}
}
