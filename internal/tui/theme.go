package tui

import "github.com/charmbracelet/lipgloss"

// palette is the set of hex colors a theme contributes to the screens.
// Status and priority colors are not themed; they come from the project
// rank tables.
type palette struct {
	Heading   string // screen and section headings
	Title     string // project title line
	Selection string // selected row background
	Border    string // panel borders
}

// presets are the built-in color schemes, selected by the `theme` key
// in config.yaml.
var presets = map[string]palette{
	"default": {
		Heading:   "#5B8DEF",
		Title:     "#FF6B6B",
		Selection: "#2D3748",
		Border:    "#444444",
	},
	"ocean": {
		Heading:   "#2d9cbc",
		Title:     "#4fd1c5",
		Selection: "#0d2137",
		Border:    "#1a6b8a",
	},
	"forest": {
		Heading:   "#8b6914",
		Title:     "#d4a017",
		Selection: "#1e3a1e",
		Border:    "#2d5a27",
	},
}

// paletteFor resolves a preset by name, falling back to default for an
// unknown name, then layers any per-color overrides from config
// (`theme-colors` keys matching palette field names).
func paletteFor(name string, overrides map[string]string) palette {
	p, ok := presets[name]
	if !ok {
		p = presets["default"]
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		switch key {
		case "heading":
			p.Heading = value
		case "title":
			p.Title = value
		case "selection":
			p.Selection = value
		case "border":
			p.Border = value
		}
	}
	return p
}

// themeStyles holds every reusable style the screens draw with.
type themeStyles struct {
	header      lipgloss.Style
	dim         lipgloss.Style
	column      lipgloss.Style
	selected    lipgloss.Style
	footer      lipgloss.Style
	errText     lipgloss.Style
	panel       lipgloss.Style
	panelTitle  lipgloss.Style
	title       lipgloss.Style
	label       lipgloss.Style
	sectionHead lipgloss.Style
	entryHead   lipgloss.Style
	entryDate   lipgloss.Style
}

func buildStyles(p palette) themeStyles {
	return themeStyles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Heading)).MarginBottom(1),
		dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		column:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		selected:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(p.Selection)),
		footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1),
		errText:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
		panelTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Heading)),
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Title)),
		label:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14),
		sectionHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Heading)),
		entryHead:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Heading)),
		entryDate:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// th is the active style set. New swaps it for the configured theme
// before the program starts.
var th = buildStyles(presets["default"])

func applyTheme(name string, overrides map[string]string) {
	th = buildStyles(paletteFor(name, overrides))
}
