// internal/tui/app.go
//
// The main TUI for whatdoing. It uses bubbletea, which follows The Elm
// Architecture: the App model holds all state, Update reacts to
// messages, View renders the current screen to a string.
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashkm/whatdoing/internal/config"
	"github.com/ashkm/whatdoing/internal/journal"
	"github.com/ashkm/whatdoing/internal/logbook"
	"github.com/ashkm/whatdoing/internal/logging"
	"github.com/ashkm/whatdoing/internal/project"
)

// appState represents which "screen" we're on
type appState int

const (
	stateDashboard  appState = iota // Ranked project table
	stateProject                    // Single project drill-in
	stateJournal                    // Work log browser
	stateScratchpad                 // Free-form scratchpad
	stateGuide                      // Keybinding help
)

// inputMode tracks which inline input owns the keyboard.
type inputMode int

const (
	inputNone inputMode = iota
	inputFilter
	inputNextAction
	inputLogProject
	inputLogNote
	inputSearch
	inputNewPreset
	inputAddSection
)

// editorFinishedMsg is delivered when a handed-off editor exits.
type editorFinishedMsg struct {
	err error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state appState
	cfg   *config.Config
	store *journal.Store
	book  *logbook.Logbook
	log   *logging.Logger

	width  int
	height int

	// Dashboard
	projects  []*project.Project
	filtered  []*project.Project
	selection int
	filter    textinput.Model

	// Project screen
	proj         *project.Project
	sections     viewport.Model
	liveGen      int
	liveInfo     liveInfo
	nextInput    textinput.Model
	presetInput  textinput.Model
	sectionInput textinput.Model
	presetKind   string // "status" or "priority"

	// Journal screen
	entries      []journal.Entry
	searchInput  textinput.Model
	searchActive bool
	logProject   textinput.Model
	logNote      textarea.Model

	// Scratchpad
	scratch textarea.Model

	mode      inputMode
	statusMsg string
	rootError string
}

// New builds the App. target optionally names a project (or one of the
// special targets "journal", "scratch", "guide") to open directly.
func New(cfg *config.Config, target string) (*App, error) {
	store, err := journal.New(config.JournalDir())
	if err != nil {
		return nil, err
	}
	book, err := logbook.New(filepath.Join(config.LogsDir(), "activity.log"))
	if err != nil {
		return nil, err
	}
	log, err := logging.New(config.LogsDir())
	if err != nil {
		return nil, err
	}

	applyTheme(cfg.Theme, cfg.ThemeColors)

	filter := textinput.New()
	filter.Placeholder = "filter projects"
	filter.Prompt = "/ "

	next := textinput.New()
	next.Placeholder = "next action"
	next.Prompt = "> "

	preset := textinput.New()
	preset.Placeholder = "new preset"
	preset.Prompt = "+ "

	section := textinput.New()
	section.Placeholder = "section heading"
	section.Prompt = "## "

	search := textinput.New()
	search.Placeholder = "search journal"
	search.Prompt = "/ "

	logProj := textinput.New()
	logProj.Placeholder = "project"
	logProj.Prompt = "project: "

	note := textarea.New()
	note.Placeholder = "what did you do?"
	note.SetHeight(4)

	scratch := textarea.New()
	scratch.Placeholder = "scratchpad"

	app := &App{
		state:        stateDashboard,
		cfg:          cfg,
		store:        store,
		book:         book,
		log:          log,
		filter:       filter,
		nextInput:    next,
		presetInput:  preset,
		sectionInput: section,
		searchInput:  search,
		logProject:   logProj,
		logNote:      note,
		scratch:      scratch,
	}

	app.rescan()
	app.log.Printf("session opened, %d projects under %s", len(app.projects), cfg.ProjectsPath())

	switch target {
	case "":
		if last := config.LoadState().LastProject; last != "" {
			app.selectByName(last)
		}
	case "journal":
		app.openJournal()
	case "scratch":
		app.openScratchpad()
	case "guide":
		app.state = stateGuide
	default:
		if p := project.Resolve(cfg.ProjectsPath(), target); p != nil {
			app.openProject(p)
		} else {
			app.statusMsg = fmt.Sprintf("Project %q not found", target)
		}
	}
	return app, nil
}

// Close flushes the debug log.
func (a *App) Close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

// rescan rebuilds the project list from disk.
func (a *App) rescan() {
	root := a.cfg.ProjectsPath()
	if _, err := os.Stat(root); err != nil {
		a.rootError = fmt.Sprintf("Projects root %s does not exist", root)
		a.projects = nil
		a.filtered = nil
		return
	}
	a.rootError = ""
	a.projects = project.Scan(root)
	a.applyFilter()
}

func (a *App) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(a.filter.Value()))
	if query == "" {
		a.filtered = a.projects
	} else {
		a.filtered = nil
		for _, p := range a.projects {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.NextAction), query) ||
				strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), query) {
				a.filtered = append(a.filtered, p)
			}
		}
	}
	if a.selection >= len(a.filtered) {
		a.selection = max(0, len(a.filtered)-1)
	}
}

func (a *App) selectByName(name string) {
	for i, p := range a.filtered {
		if p.Name == name {
			a.selection = i
			return
		}
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	if a.state == stateProject && a.proj != nil {
		return a.fetchLive()
	}
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sections.Width = max(20, msg.Width-8)
		a.sections.Height = max(5, msg.Height-16)
		a.scratch.SetWidth(max(20, msg.Width-8))
		a.scratch.SetHeight(max(5, msg.Height-8))
		a.logNote.SetWidth(max(20, msg.Width-12))
		return a, nil

	case liveMsg:
		// A navigation event bumps liveGen; late results for a screen
		// no longer active are discarded here.
		if msg.gen != a.liveGen || a.state != stateProject {
			return a, nil
		}
		a.liveInfo = msg.info
		return a, nil

	case editorFinishedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Editor failed: %v", msg.err)
			a.book.Error("editor failed: %v", msg.err)
			return a, nil
		}
		return a, a.reloadAfterEdit()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}
	if a.mode != inputNone {
		return a.handleInputKey(msg)
	}

	switch a.state {
	case stateDashboard:
		return a.handleDashboardKey(msg)
	case stateProject:
		return a.handleProjectKey(msg)
	case stateJournal:
		return a.handleJournalKey(msg)
	case stateScratchpad:
		return a.handleScratchpadKey(msg)
	case stateGuide:
		switch msg.String() {
		case "esc", "q", "?":
			a.state = stateDashboard
		}
		return a, nil
	}
	return a, nil
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	if a.state == stateScratchpad {
		a.saveScratchpad()
	}
	st := config.State{}
	if a.proj != nil {
		st.LastProject = a.proj.Name
	} else if a.selection < len(a.filtered) {
		st.LastProject = a.filtered[a.selection].Name
	}
	config.SaveState(st)
	a.log.Printf("session closed")
	return a, tea.Quit
}

// openEditor suspends the TUI and hands the file to the user's editor.
func (a *App) openEditor(path string) tea.Cmd {
	editor := a.cfg.ResolvedEditor()
	cmd := exec.Command(editor, path)
	a.book.Info("editing %s with %s", filepath.Base(path), editor)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// reloadAfterEdit re-derives whatever the active screen shows from
// disk; Projects are value snapshots, so a fresh Load is the only way
// to observe a mutation.
func (a *App) reloadAfterEdit() tea.Cmd {
	switch a.state {
	case stateProject:
		if a.proj != nil {
			a.proj = project.Load(a.proj.DirPath)
			a.renderSections()
		}
		return a.fetchLive()
	case stateDashboard:
		a.rescan()
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
