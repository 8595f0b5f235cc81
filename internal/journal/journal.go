// Package journal is an append-only, date-partitioned work log. One
// markdown file per calendar day; one `## HH:MM — project` heading per
// entry. Appends are plain O_APPEND writes, single local writer.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entries are delimited by a heading of this exact shape. A heading
// missing the separator, the time, or the project is dropped entirely
// so garbage headings never pollute retrieval.
const headingSeparator = "—" // em dash

// Only this many of the newest day files are scanned per read.
const maxDayFiles = 7

// Entry is one logged unit of work.
type Entry struct {
	Date    string
	Time    string
	Project string
	Note    string
	File    string
}

// Store reads and writes day files under a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// New returns a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: ensure dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Append logs a timestamped note for a project to today's day file,
// creating the file with a date header if it doesn't exist yet.
func (s *Store) Append(project, note string) error {
	now := s.now()
	path := filepath.Join(s.dir, now.Format("2006-01-02")+".md")
	entry := fmt.Sprintf("\n## %s %s %s\n%s\n", now.Format("15:04"), headingSeparator, project, note)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		header := fmt.Sprintf("# Journal %s %s\n", headingSeparator, now.Format("2006-01-02"))
		if err := os.WriteFile(path, []byte(header+entry), 0o644); err != nil {
			return fmt.Errorf("journal: create day file: %w", err)
		}
		return nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open day file: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(entry); err != nil {
		return fmt.Errorf("journal: append entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries across the newest day files, in
// (newest day, file order) sequence. At most seven day files are read
// regardless of limit.
func (s *Store) Recent(limit int) []Entry {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil || len(files) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	if len(files) > maxDayFiles {
		files = files[:maxDayFiles]
	}

	var entries []Entry
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		entries = append(entries, parseDayFile(path, string(data))...)
		if len(entries) >= limit {
			break
		}
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Search filters recent entries by case-insensitive substring match
// against the project name or note text.
func (s *Store) Search(query string) []Entry {
	q := strings.ToLower(query)
	var matches []Entry
	for _, e := range s.Recent(100) {
		if strings.Contains(strings.ToLower(e.Project), q) ||
			strings.Contains(strings.ToLower(e.Note), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

func parseDayFile(path, text string) []Entry {
	date := strings.TrimSuffix(filepath.Base(path), ".md")

	var entries []Entry
	var current Entry
	var noteLines []string
	flush := func() {
		if current.Time == "" || current.Project == "" {
			return
		}
		current.Note = strings.TrimSpace(strings.Join(noteLines, "\n"))
		entries = append(entries, current)
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "## ") && strings.Contains(line, headingSeparator) {
			flush()
			header := strings.TrimSpace(line[3:])
			timePart, projectPart, _ := strings.Cut(header, headingSeparator)
			current = Entry{
				Date:    date,
				Time:    strings.TrimSpace(timePart),
				Project: strings.TrimSpace(projectPart),
				File:    path,
			}
			noteLines = noteLines[:0]
			continue
		}
		if current.Time != "" {
			noteLines = append(noteLines, line)
		}
	}
	flush()
	return entries
}
