package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleInputKey routes keys while an inline input owns the keyboard.
func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch a.mode {
	case inputFilter:
		switch key {
		case "esc":
			a.filter.SetValue("")
			a.filter.Blur()
			a.mode = inputNone
			a.applyFilter()
		case "enter":
			a.filter.Blur()
			a.mode = inputNone
		default:
			var cmd tea.Cmd
			a.filter, cmd = a.filter.Update(msg)
			a.applyFilter()
			return a, cmd
		}

	case inputNextAction:
		switch key {
		case "esc":
			a.nextInput.Blur()
			a.mode = inputNone
		case "enter":
			value := strings.TrimSpace(a.nextInput.Value())
			a.nextInput.Blur()
			a.mode = inputNone
			if value != "" {
				return a, a.writeField("Next_action", value)
			}
		default:
			var cmd tea.Cmd
			a.nextInput, cmd = a.nextInput.Update(msg)
			return a, cmd
		}

	case inputNewPreset:
		switch key {
		case "esc":
			a.presetInput.Blur()
			a.mode = inputNone
		case "enter":
			value := strings.TrimSpace(a.presetInput.Value())
			a.presetInput.Blur()
			a.mode = inputNone
			return a, a.addPreset(a.presetKind, value)
		default:
			var cmd tea.Cmd
			a.presetInput, cmd = a.presetInput.Update(msg)
			return a, cmd
		}

	case inputAddSection:
		switch key {
		case "esc":
			a.sectionInput.Blur()
			a.mode = inputNone
		case "enter":
			value := strings.TrimSpace(a.sectionInput.Value())
			a.sectionInput.Blur()
			a.mode = inputNone
			return a, a.addSection(value)
		default:
			var cmd tea.Cmd
			a.sectionInput, cmd = a.sectionInput.Update(msg)
			return a, cmd
		}

	case inputSearch:
		switch key {
		case "esc":
			a.searchInput.SetValue("")
			a.searchInput.Blur()
			a.searchActive = false
			a.mode = inputNone
			a.refreshJournal()
		case "enter":
			a.searchInput.Blur()
			a.mode = inputNone
		default:
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(msg)
			a.refreshJournal()
			return a, cmd
		}

	case inputLogProject:
		switch key {
		case "esc":
			a.logProject.Blur()
			a.mode = inputNone
		case "enter", "tab":
			a.logProject.Blur()
			a.mode = inputLogNote
			a.logNote.Focus()
		default:
			var cmd tea.Cmd
			a.logProject, cmd = a.logProject.Update(msg)
			return a, cmd
		}

	case inputLogNote:
		switch key {
		case "esc":
			a.logNote.Blur()
			a.mode = inputNone
		case "ctrl+s":
			a.logNote.Blur()
			a.mode = inputNone
			name := a.defaultLogProject()
			if a.state == stateJournal {
				name = strings.TrimSpace(a.logProject.Value())
			}
			return a, a.submitLogWork(name)
		default:
			var cmd tea.Cmd
			a.logNote, cmd = a.logNote.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}
