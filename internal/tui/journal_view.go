package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const journalPageSize = 20

func (a *App) openJournal() {
	a.state = stateJournal
	a.searchActive = false
	a.searchInput.SetValue("")
	a.entries = a.store.Recent(journalPageSize)
}

func (a *App) refreshJournal() {
	if a.searchActive && strings.TrimSpace(a.searchInput.Value()) != "" {
		a.entries = a.store.Search(a.searchInput.Value())
		return
	}
	a.entries = a.store.Recent(journalPageSize)
}

func (a *App) handleJournalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.state = stateDashboard
		return a, nil
	case "/":
		a.searchActive = true
		a.mode = inputSearch
		a.searchInput.Focus()
		return a, nil
	case "l":
		a.mode = inputLogProject
		a.logProject.SetValue(a.defaultLogProject())
		a.logNote.SetValue("")
		a.logProject.Focus()
		return a, nil
	case "r":
		a.refreshJournal()
	case "?":
		a.state = stateGuide
	}
	return a, nil
}

func (a *App) defaultLogProject() string {
	if a.proj != nil {
		return a.proj.Name
	}
	if a.selection < len(a.filtered) {
		return a.filtered[a.selection].Name
	}
	return ""
}

// submitLogWork appends the pending note to the journal store.
func (a *App) submitLogWork(projectName string) tea.Cmd {
	note := strings.TrimSpace(a.logNote.Value())
	if projectName == "" || note == "" {
		a.statusMsg = "Nothing logged"
		return nil
	}
	if err := a.store.Append(projectName, note); err != nil {
		a.statusMsg = fmt.Sprintf("Journal write failed: %v", err)
		a.book.Error("journal append: %v", err)
		return nil
	}
	a.book.Info("logged work on %s", projectName)
	a.statusMsg = "Logged to journal"
	if a.state == stateJournal {
		a.refreshJournal()
	}
	return nil
}

func (a *App) renderJournal() string {
	var b strings.Builder
	b.WriteString(th.header.Render("Journal"))
	b.WriteString("\n")

	if a.searchActive || a.mode == inputSearch {
		b.WriteString(a.searchInput.View())
		b.WriteString("\n\n")
	}

	if a.mode == inputLogProject || a.mode == inputLogNote {
		b.WriteString(a.logProject.View())
		b.WriteString("\n")
		b.WriteString(a.logNote.View())
		b.WriteString("\n")
		b.WriteString(th.dim.Render("ctrl+s save · esc cancel"))
		b.WriteString("\n\n")
	}

	if len(a.entries) == 0 {
		b.WriteString(th.dim.Render("no entries yet — press l to log work"))
		return b.String()
	}

	lastDate := ""
	for _, e := range a.entries {
		if e.Date != lastDate {
			b.WriteString(th.entryDate.Render(e.Date))
			b.WriteString("\n")
			lastDate = e.Date
		}
		b.WriteString(th.entryHead.Render(fmt.Sprintf("  %s — %s", e.Time, e.Project)))
		b.WriteString("\n")
		for _, line := range strings.Split(e.Note, "\n") {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}
