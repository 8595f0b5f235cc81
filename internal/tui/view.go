package tui

import "strings"

// View renders the current state to a string.
func (a *App) View() string {
	var content string
	switch a.state {
	case stateDashboard:
		content = a.renderDashboard()
	case stateProject:
		content = a.renderProject()
	case stateJournal:
		content = a.renderJournal()
	case stateScratchpad:
		content = a.renderScratchpad()
	case stateGuide:
		content = a.renderGuide()
	}

	footer := a.renderFooter()
	if footer == "" {
		return content
	}
	return content + "\n" + footer
}

func (a *App) renderFooter() string {
	var parts []string
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	if hints := a.keyHints(); hints != "" {
		parts = append(parts, hints)
	}
	if len(parts) == 0 {
		return ""
	}
	return th.footer.Render(strings.Join(parts, "  ·  "))
}

func (a *App) keyHints() string {
	switch a.state {
	case stateDashboard:
		return "enter open · / filter · e edit · l journal · s scratch · r rescan · ? help · q quit"
	case stateProject:
		return "s status · p priority · n next · a section · e edit · w log · r refresh · esc back"
	case stateJournal:
		return "/ search · l log work · r refresh · esc back"
	case stateScratchpad:
		return ""
	default:
		return "esc back"
	}
}

func (a *App) renderGuide() string {
	lines := []string{
		th.header.Render("Keys"),
		"",
		th.sectionHead.Render("Dashboard"),
		"  j/k move · enter open project · / filter · e edit overview",
		"  l journal · s scratchpad · r rescan · q quit",
		"",
		th.sectionHead.Render("Project"),
		"  s cycle status · S new status preset",
		"  p cycle priority · P new priority preset",
		"  n edit next action · a add section · e open in editor · w log work",
		"  r refresh live info · j/k scroll sections · esc back",
		"",
		th.sectionHead.Render("Journal"),
		"  / search · l log work · esc back",
		"",
		th.sectionHead.Render("Files"),
		"  projects:   <base_path>/<overview_dir>/*/" + "_OVERVIEW.md",
		"  journal:    ~/.whatdoing/journal/YYYY-MM-DD.md",
		"  scratchpad: ~/.whatdoing/scratchpad.md",
	}
	return strings.Join(lines, "\n")
}
