// cmd/whatdoing/main.go
//
// Entry point for the whatdoing dashboard.
//
// With no arguments on a terminal it launches the interactive TUI.
// With --list / --journal / --log (or when stdout is piped) it prints
// plain output instead, so the same binary works in scripts.

package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/ashkm/whatdoing/internal/config"
	"github.com/ashkm/whatdoing/internal/journal"
	"github.com/ashkm/whatdoing/internal/project"
	"github.com/ashkm/whatdoing/internal/tui"
)

var version = "dev"

func main() {
	var (
		listFlag    = flag.Bool("list", false, "print the ranked project table and exit")
		journalFlag = flag.IntP("journal", "j", 0, "print the N most recent journal entries and exit")
		logFlag     = flag.String("log", "", "log a work note for the named project and exit (note read from args)")
		rootFlag    = flag.String("root", "", "override the projects root directory")
		versionFlag = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("whatdoing", version)
		return
	}

	cfg := config.Load()
	if *rootFlag != "" {
		cfg.BasePath = *rootFlag
		cfg.OverviewDir = "."
	}

	switch {
	case *logFlag != "":
		note := strings.TrimSpace(strings.Join(flag.Args(), " "))
		if note == "" {
			fmt.Fprintln(os.Stderr, "error: --log needs a note, e.g. whatdoing --log my-project fixed the bug")
			os.Exit(1)
		}
		if err := logWork(cfg, *logFlag, note); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return

	case *journalFlag > 0:
		if err := printJournal(*journalFlag); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return

	case *listFlag || !isatty.IsTerminal(os.Stdout.Fd()):
		printProjects(cfg)
		return
	}

	target := ""
	if args := flag.Args(); len(args) > 0 {
		target = args[0]
	}

	app, err := tui.New(cfg, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running TUI:", err)
		os.Exit(1)
	}
}

// printProjects renders the ranked project list as a plain table.
func printProjects(cfg *config.Config) {
	root := cfg.ProjectsPath()
	if _, err := os.Stat(root); err != nil {
		fmt.Printf("projects root %s does not exist\n", root)
		return
	}

	projects := project.Scan(root)
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("STATUS", "PRI", "PROJECT", "TYPE", "NEXT ACTION")

	for _, p := range projects {
		status := p.Status
		if p.HasOverview {
			status = colorForStatus(p.Status)(p.Status)
		} else {
			status = color.New(color.Faint).Sprint("no overview")
		}
		table.AddRow(status, p.Priority, p.Name, p.ProjectType, p.NextAction)
	}
	fmt.Println(table)
}

func colorForStatus(status string) func(a ...interface{}) string {
	switch strings.ToLower(status) {
	case "active", "running":
		return color.New(color.FgGreen).SprintFunc()
	case "in progress", "ready":
		return color.New(color.FgCyan).SprintFunc()
	case "paused":
		return color.New(color.FgYellow).SprintFunc()
	case "stuck", "blocked":
		return color.New(color.FgRed).SprintFunc()
	case "backlog":
		return color.New(color.Faint).SprintFunc()
	default:
		return color.New(color.Reset).SprintFunc()
	}
}

func printJournal(limit int) error {
	store, err := journal.New(config.JournalDir())
	if err != nil {
		return err
	}
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	lastDate := ""
	for _, e := range store.Recent(limit) {
		if e.Date != lastDate {
			fmt.Println(faint(e.Date))
			lastDate = e.Date
		}
		fmt.Printf("  %s — %s\n", bold(e.Time), e.Project)
		for _, line := range strings.Split(e.Note, "\n") {
			fmt.Println("    " + line)
		}
	}
	return nil
}

// logWork resolves the project by name or substring so shell usage can
// be sloppy, then appends the note.
func logWork(cfg *config.Config, query, note string) error {
	name := query
	if p := project.Resolve(cfg.ProjectsPath(), query); p != nil {
		name = p.Name
	}
	store, err := journal.New(config.JournalDir())
	if err != nil {
		return err
	}
	if err := store.Append(name, note); err != nil {
		return err
	}
	fmt.Printf("logged to %s\n", name)
	return nil
}
