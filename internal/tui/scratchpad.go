package tui

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/natefinch/atomic"

	"github.com/ashkm/whatdoing/internal/config"
)

func (a *App) openScratchpad() {
	a.state = stateScratchpad
	data, err := os.ReadFile(config.ScratchpadPath())
	if err == nil {
		a.scratch.SetValue(string(data))
	}
	a.scratch.CursorEnd()
	a.scratch.Focus()
}

func (a *App) saveScratchpad() {
	if err := atomic.WriteFile(config.ScratchpadPath(), strings.NewReader(a.scratch.Value())); err != nil {
		a.book.Error("save scratchpad: %v", err)
		return
	}
	a.statusMsg = "Scratchpad saved"
}

func (a *App) handleScratchpadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.saveScratchpad()
		a.scratch.Blur()
		a.state = stateDashboard
		return a, nil
	case "ctrl+s":
		a.saveScratchpad()
		return a, nil
	}
	var cmd tea.Cmd
	a.scratch, cmd = a.scratch.Update(msg)
	return a, cmd
}

func (a *App) renderScratchpad() string {
	return th.header.Render("Scratchpad") + "\n" +
		a.scratch.View() + "\n" +
		th.dim.Render("esc save & close · ctrl+s save")
}
