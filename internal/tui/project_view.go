package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ashkm/whatdoing/internal/config"
	"github.com/ashkm/whatdoing/internal/docfile"
	"github.com/ashkm/whatdoing/internal/project"
)

func (a *App) openProject(p *project.Project) {
	a.proj = p
	a.state = stateProject
	a.statusMsg = ""
	a.renderSections()
}

func (a *App) renderSections() {
	if a.proj == nil || a.proj.Doc == nil {
		a.sections.SetContent("")
		return
	}
	var b strings.Builder
	for _, heading := range a.proj.Doc.SectionHeadings() {
		b.WriteString(th.sectionHead.Render("## " + heading))
		b.WriteString("\n")
		content := a.proj.Doc.Section(heading)
		if heading == "Blockers" && isNone(content) {
			content = th.dim.Render("none")
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	a.sections.SetContent(b.String())
}

// isNone reports whether a Blockers section records no blockers.
func isNone(content string) bool {
	c := strings.ToLower(strings.TrimSpace(content))
	return c == "" || c == "none" || strings.HasPrefix(c, "none.")
}

func (a *App) handleProjectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.proj = nil
		a.liveGen++ // cancel interest in any in-flight lookup
		a.state = stateDashboard
		a.rescan()
		return a, nil
	case "s":
		return a, a.cyclePreset("status")
	case "p":
		return a, a.cyclePreset("priority")
	case "S":
		a.presetKind = "status"
		a.mode = inputNewPreset
		a.presetInput.SetValue("")
		a.presetInput.Focus()
		return a, nil
	case "P":
		a.presetKind = "priority"
		a.mode = inputNewPreset
		a.presetInput.SetValue("")
		a.presetInput.Focus()
		return a, nil
	case "n":
		a.mode = inputNextAction
		a.nextInput.SetValue(a.proj.NextAction)
		a.nextInput.Focus()
		return a, nil
	case "a":
		if !a.proj.HasOverview {
			a.statusMsg = "No overview file to edit"
			return a, nil
		}
		a.mode = inputAddSection
		a.sectionInput.SetValue("")
		a.sectionInput.Focus()
		return a, nil
	case "e":
		if a.proj.HasOverview {
			return a, a.openEditor(a.proj.OverviewPath())
		}
		a.statusMsg = fmt.Sprintf("%s has no %s", a.proj.Name, project.OverviewFile)
		return a, nil
	case "w":
		a.mode = inputLogNote
		a.logNote.SetValue("")
		a.logNote.Focus()
		return a, nil
	case "r":
		return a, a.fetchLive()
	case "j", "down":
		a.sections.LineDown(1)
	case "k", "up":
		a.sections.LineUp(1)
	case "?":
		a.state = stateGuide
	}
	return a, nil
}

// cyclePreset advances status or priority to the next configured
// preset and writes it straight through to the overview file.
func (a *App) cyclePreset(kind string) tea.Cmd {
	if a.proj == nil || !a.proj.HasOverview {
		a.statusMsg = "No overview file to edit"
		return nil
	}
	presets := a.cfg.StatusPresets
	current := a.proj.Status
	key := "Status"
	if kind == "priority" {
		presets = a.cfg.PriorityPresets
		current = a.proj.Priority
		key = "Priority"
	}
	if len(presets) == 0 {
		return nil
	}
	idx := 0
	for i, preset := range presets {
		if strings.EqualFold(preset, current) {
			idx = (i + 1) % len(presets)
			break
		}
	}
	return a.writeField(key, presets[idx])
}

// writeField patches one frontmatter key and re-derives the project.
func (a *App) writeField(key, value string) tea.Cmd {
	if err := docfile.WriteField(a.proj.OverviewPath(), key, value); err != nil {
		a.statusMsg = fmt.Sprintf("Write failed: %v", err)
		a.book.Error("write %s: %v", key, err)
		return nil
	}
	a.book.Info("%s: %s → %s", a.proj.Name, key, value)
	a.proj = project.Load(a.proj.DirPath)
	a.renderSections()
	a.statusMsg = fmt.Sprintf("%s → %s", key, value)
	return nil
}

// addSection appends an empty `## heading` to the overview body and
// re-derives the project so the new section shows up immediately.
func (a *App) addSection(heading string) tea.Cmd {
	if heading == "" {
		return nil
	}
	if err := docfile.WriteSection(a.proj.OverviewPath(), heading, ""); err != nil {
		a.statusMsg = fmt.Sprintf("Write failed: %v", err)
		a.book.Error("add section %q: %v", heading, err)
		return nil
	}
	a.book.Info("%s: added section %q", a.proj.Name, heading)
	a.proj = project.Load(a.proj.DirPath)
	a.renderSections()
	a.statusMsg = fmt.Sprintf("Added ## %s", heading)
	return nil
}

// addPreset records a brand-new status/priority value, persists it to
// the config so it shows up in future choice lists, and applies it.
func (a *App) addPreset(kind, value string) tea.Cmd {
	if value == "" {
		return nil
	}
	key := "Status"
	presets := &a.cfg.StatusPresets
	if kind == "priority" {
		key = "Priority"
		presets = &a.cfg.PriorityPresets
	}
	known := false
	for _, p := range *presets {
		if strings.EqualFold(p, value) {
			known = true
			break
		}
	}
	if !known {
		*presets = append(*presets, value)
		if err := config.Save(a.cfg); err != nil {
			a.book.Error("save config: %v", err)
		} else {
			a.book.Info("preset added: %s %q", kind, value)
		}
	}
	return a.writeField(key, value)
}

func (a *App) renderProject() string {
	p := a.proj
	if p == nil {
		return "no project selected"
	}

	var b strings.Builder
	title := p.Title
	if title == "" {
		title = p.Name
	}
	b.WriteString(th.title.Render(title))
	b.WriteString("\n\n")

	if !p.HasOverview {
		b.WriteString(th.dim.Render(fmt.Sprintf("No %s in %s", project.OverviewFile, p.DirPath)))
		return b.String()
	}

	meta := [][2]string{
		{"Status", lipgloss.NewStyle().Foreground(lipgloss.Color(p.StatusColor())).Render(p.Status)},
		{"Priority", lipgloss.NewStyle().Foreground(lipgloss.Color(p.PriorityColor())).Render(p.Priority)},
		{"Next action", p.NextAction},
		{"Type", p.ProjectType},
		{"Energy", p.Energy},
		{"Estimate", p.TimeEstimate},
		{"Tags", strings.Join(p.Tags, ", ")},
	}
	for _, kv := range meta {
		if kv[1] == "" {
			continue
		}
		b.WriteString(th.label.Render(kv[0]))
		b.WriteString(kv[1])
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.renderLivePanel())
	b.WriteString("\n\n")

	switch a.mode {
	case inputNextAction:
		b.WriteString(a.nextInput.View())
		b.WriteString("\n\n")
	case inputNewPreset:
		b.WriteString(fmt.Sprintf("new %s preset  %s", a.presetKind, a.presetInput.View()))
		b.WriteString("\n\n")
	case inputAddSection:
		b.WriteString(a.sectionInput.View())
		b.WriteString("\n\n")
	case inputLogNote:
		b.WriteString(th.sectionHead.Render("Log work (ctrl+s to save, esc to cancel)"))
		b.WriteString("\n")
		b.WriteString(a.logNote.View())
		b.WriteString("\n\n")
	}

	b.WriteString(a.sections.View())
	return b.String()
}

func (a *App) renderLivePanel() string {
	rows := []string{
		th.label.Render("Modified") + a.liveInfo.Modified,
		th.label.Render("Git") + a.liveInfo.Git,
	}
	if a.liveInfo.Branch != "" {
		rows = append(rows, th.label.Render("Branch")+a.liveInfo.Branch)
	}
	if a.proj != nil && a.proj.DockerName != "" {
		rows = append(rows, th.label.Render("Docker")+a.liveInfo.Docker)
	}
	return th.panel.Render(strings.Join(rows, "\n"))
}
