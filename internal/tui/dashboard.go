package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ashkm/whatdoing/internal/project"
)

func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a.quit()
	case "j", "down":
		if a.selection < len(a.filtered)-1 {
			a.selection++
		}
	case "k", "up":
		if a.selection > 0 {
			a.selection--
		}
	case "g":
		a.selection = 0
	case "G":
		a.selection = max(0, len(a.filtered)-1)
	case "enter":
		if a.selection < len(a.filtered) {
			a.openProject(project.Load(a.filtered[a.selection].DirPath))
			return a, a.fetchLive()
		}
	case "e":
		if a.selection < len(a.filtered) {
			p := a.filtered[a.selection]
			if p.HasOverview {
				return a, a.openEditor(p.OverviewPath())
			}
			a.statusMsg = fmt.Sprintf("%s has no %s", p.Name, project.OverviewFile)
		}
	case "/":
		a.mode = inputFilter
		a.filter.Focus()
		return a, nil
	case "r":
		a.rescan()
		a.statusMsg = fmt.Sprintf("Rescanned, %d projects", len(a.projects))
	case "l":
		a.openJournal()
	case "s":
		a.openScratchpad()
	case "?":
		a.state = stateGuide
	}
	return a, nil
}

func (a *App) renderDashboard() string {
	var b strings.Builder
	b.WriteString(th.header.Render("whatdoing"))
	b.WriteString("\n")

	if a.rootError != "" {
		b.WriteString(th.errText.Render(a.rootError))
		b.WriteString("\n")
		b.WriteString(th.dim.Render("Set base_path in " + "config.yaml" + " or WHATDOING_BASE."))
		return b.String()
	}

	if a.mode == inputFilter || a.filter.Value() != "" {
		b.WriteString(a.filter.View())
		b.WriteString("\n\n")
	}

	b.WriteString(th.column.Render(fmt.Sprintf("  %-12s %-6s %-24s %-10s %s",
		"STATUS", "PRI", "PROJECT", "TYPE", "NEXT ACTION")))
	b.WriteString("\n")

	for i, p := range a.filtered {
		b.WriteString(a.renderProjectRow(p, i == a.selection))
		b.WriteString("\n")
	}
	if len(a.filtered) == 0 {
		b.WriteString(th.dim.Render("  no projects match"))
		b.WriteString("\n")
	}

	if tail := a.renderLogPanel(); tail != "" {
		b.WriteString("\n")
		b.WriteString(tail)
	}
	return b.String()
}

func (a *App) renderProjectRow(p *project.Project, selected bool) string {
	status := p.Status
	priority := p.Priority
	next := truncate(p.NextAction, 40)

	line := fmt.Sprintf("  %-12s %-6s %-24s %-10s %s",
		truncate(status, 12), truncate(priority, 6), truncate(p.Name, 24),
		truncate(p.ProjectType, 10), next)

	switch {
	case selected:
		return th.selected.Render(">" + line[1:])
	case !p.HasOverview:
		// Overview-less projects are listed dimmed, never hidden.
		return th.dim.Render(line)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.StatusColor())).Render(line)
	}
}

// renderLogPanel shows the last few logbook entries, same idea as a
// shell history strip.
func (a *App) renderLogPanel() string {
	lines := a.book.Tail(4)
	if len(lines) == 0 {
		return ""
	}
	head := th.panelTitle.Render("LOG")
	body := th.dim.Render(strings.Join(lines, "\n"))
	return th.panel.Render(head + "\n" + body)
}

// truncate shortens s to n display cells, never splitting a rune.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "...")
}
