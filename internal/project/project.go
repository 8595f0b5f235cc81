// Package project wraps a directory of project folders, each optionally
// described by an _OVERVIEW.md file, and exposes them as a ranked list.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ashkm/whatdoing/internal/docfile"
)

// OverviewFile is the per-project markdown file that is the source of
// truth for a project's fields.
const OverviewFile = "_OVERVIEW.md"

// Status sort rank: lower = higher in the list.
var statusRank = map[string]int{
	"active": 1, "in progress": 1, "running": 1,
	"ready": 2, "stuck": 2, "blocked": 2,
	"paused":  3,
	"backlog": 4,
}

var priorityRank = map[string]int{"high": 1, "medium": 2, "med": 2, "low": 3}

// Status -> lipgloss color for display.
var statusColors = map[string]string{
	"active": "2", "running": "2",
	"in progress": "4",
	"ready":       "6",
	"paused":      "3",
	"stuck":       "5",
	"blocked":     "1",
	"backlog":     "8",
}

var priorityColors = map[string]string{
	"high": "1", "medium": "3", "med": "3", "low": "8",
}

// Project is a value snapshot of one project directory. It is rebuilt
// from disk on every read; after a mutation callers must load it again
// to see fresh state.
type Project struct {
	Name    string
	DirPath string

	HasOverview  bool
	Status       string
	Priority     string
	NextAction   string
	Energy       string
	TimeEstimate string
	ProjectType  string
	CodePath     string
	DockerName   string
	Tags         []string
	Title        string
	Doc          *docfile.Document
}

// SortKey orders projects by status rank, then priority rank, then
// case-insensitive name. Unrecognized values rank after everything
// known.
func (p *Project) SortKey() (int, int, string) {
	s, ok := statusRank[strings.ToLower(p.Status)]
	if !ok {
		s = 5
	}
	pr, ok := priorityRank[strings.ToLower(p.Priority)]
	if !ok {
		pr = 4
	}
	return s, pr, strings.ToLower(p.Name)
}

// StatusColor returns the display color for the project's status.
func (p *Project) StatusColor() string {
	if c, ok := statusColors[strings.ToLower(p.Status)]; ok {
		return c
	}
	return "7"
}

// PriorityColor returns the display color for the project's priority.
func (p *Project) PriorityColor() string {
	if c, ok := priorityColors[strings.ToLower(p.Priority)]; ok {
		return c
	}
	return "7"
}

// OverviewPath returns the path to the project's overview file.
func (p *Project) OverviewPath() string {
	return filepath.Join(p.DirPath, OverviewFile)
}

// Load builds a Project from a directory. A directory without an
// overview file still yields a listed project, with HasOverview false
// and every derived field at its default.
func Load(dirPath string) *Project {
	name := filepath.Base(dirPath)
	overview := filepath.Join(dirPath, OverviewFile)

	if _, err := os.Stat(overview); err != nil {
		return &Project{Name: name, DirPath: dirPath, Status: "Unknown", Priority: "Low"}
	}

	doc := docfile.ParseFile(overview)

	var tags []string
	if raw, ok := doc.Frontmatter["Tags"].([]any); ok {
		for _, t := range raw {
			tags = append(tags, strings.TrimSpace(stringifyTag(t)))
		}
	}

	title := doc.Title
	if title == "" {
		title = name
	}

	return &Project{
		Name:         name,
		DirPath:      dirPath,
		HasOverview:  true,
		Status:       doc.Get("Status", "Unknown"),
		Priority:     doc.Get("Priority", "Low"),
		NextAction:   doc.Get("Next_action", ""),
		Energy:       doc.Get("Energy_required", ""),
		TimeEstimate: doc.Get("Time_estimate", ""),
		ProjectType:  doc.Get("Type", ""),
		CodePath:     doc.Get("code_path", ""),
		DockerName:   doc.Get("docker_name", ""),
		Tags:         tags,
		Title:        title,
		Doc:          doc,
	}
}

// Scan enumerates the immediate child directories of root and returns
// them as a ranked list: overview-bearing projects first in SortKey
// order, then overview-less ones. Directories whose name starts with
// "." or "_" are skipped. A missing root yields an empty list.
func Scan(root string) []*Project {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var projects []*Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		projects = append(projects, Load(filepath.Join(root, name)))
	}

	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.HasOverview != b.HasOverview {
			return a.HasOverview
		}
		as, ap, an := a.SortKey()
		bs, bp, bn := b.SortKey()
		if as != bs {
			return as < bs
		}
		if ap != bp {
			return ap < bp
		}
		return an < bn
	})
	return projects
}

// Resolve finds a project by exact directory name, falling back to the
// first case-insensitive substring match in name order. Returns nil
// when the root is absent or nothing matches.
func Resolve(root, query string) *Project {
	if _, err := os.Stat(root); err != nil {
		return nil
	}

	exact := filepath.Join(root, query)
	if info, err := os.Stat(exact); err == nil && info.IsDir() {
		return Load(exact)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	q := strings.ToLower(query)
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(strings.ToLower(entry.Name()), q) {
			return Load(filepath.Join(root, entry.Name()))
		}
	}
	return nil
}

// Tags are scalars by contract, so fmt is enough here.
func stringifyTag(t any) string {
	if s, ok := t.(string); ok {
		return s
	}
	return fmt.Sprint(t)
}
