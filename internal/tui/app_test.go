package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ashkm/whatdoing/internal/project"
)

func TestApplyFilterMatchesNameNextActionAndTags(t *testing.T) {
	app := &App{
		filter: textinput.New(),
		projects: []*project.Project{
			{Name: "website", NextAction: "deploy"},
			{Name: "api", NextAction: "fix the web login"},
			{Name: "infra", Tags: []string{"web", "ops"}},
			{Name: "unrelated"},
		},
	}
	app.filter.SetValue("web")
	app.applyFilter()

	if len(app.filtered) != 3 {
		t.Fatalf("filtered = %d projects, want 3", len(app.filtered))
	}
	app.filter.SetValue("")
	app.applyFilter()
	if len(app.filtered) != 4 {
		t.Fatalf("cleared filter = %d projects, want 4", len(app.filtered))
	}
}

func TestApplyFilterClampsSelection(t *testing.T) {
	app := &App{
		filter: textinput.New(),
		projects: []*project.Project{
			{Name: "one"}, {Name: "two"}, {Name: "three"},
		},
		selection: 2,
	}
	app.filter.SetValue("one")
	app.applyFilter()
	if app.selection != 0 {
		t.Fatalf("selection = %d, want 0", app.selection)
	}
}

func TestStaleLiveResultsAreDiscarded(t *testing.T) {
	app := &App{state: stateProject, liveGen: 3}

	model, _ := app.Update(liveMsg{gen: 2, info: liveInfo{Git: "stale"}})
	app = model.(*App)
	if app.liveInfo.Git == "stale" {
		t.Fatal("stale live result applied")
	}

	model, _ = app.Update(liveMsg{gen: 3, info: liveInfo{Git: "fresh"}})
	app = model.(*App)
	if app.liveInfo.Git != "fresh" {
		t.Fatalf("fresh live result dropped: %+v", app.liveInfo)
	}
}

func TestIsNone(t *testing.T) {
	for _, s := range []string{"", "none", "None", "NONE", "none. nothing to see"} {
		if !isNone(s) {
			t.Errorf("isNone(%q) = false", s)
		}
	}
	for _, s := range []string{"waiting on review", "none of the tests pass"} {
		if isNone(s) {
			t.Errorf("isNone(%q) = true", s)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a-very-long-project-name", 10); got != "a-very-..." {
		t.Fatalf("truncate = %q", got)
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	got := truncate("crème-brûlée-recipes", 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if got != "crème-b..." {
		t.Fatalf("truncate = %q", got)
	}
}
