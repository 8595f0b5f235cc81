package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "journal"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAppendThenRecentRoundtrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Append("site", "fixed bug"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries := s.Recent(1)
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Project != "site" {
		t.Fatalf("Project = %q", e.Project)
	}
	if e.Note != "fixed bug" {
		t.Fatalf("Note = %q", e.Note)
	}
	if !regexp.MustCompile(`^\d{2}:\d{2}$`).MatchString(e.Time) {
		t.Fatalf("Time = %q, want HH:MM", e.Time)
	}
	if e.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("Date = %q", e.Date)
	}
}

func TestAppendCreatesDayFileWithHeader(t *testing.T) {
	s := newTestStore(t)
	if err := s.Append("site", "note one"); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("site", "note two"); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(s.Dir(), time.Now().Format("2006-01-02")+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# Journal — ") {
		t.Fatalf("missing day header:\n%s", text)
	}
	if strings.Count(text, "# Journal") != 1 {
		t.Fatalf("header duplicated:\n%s", text)
	}
	if len(s.Recent(10)) != 2 {
		t.Fatalf("expected 2 entries")
	}
}

func TestRecentNewestDayFirstAndLimit(t *testing.T) {
	s := newTestStore(t)
	writeDay(t, s, "2026-02-24", entry("09:00", "old", "old note"))
	writeDay(t, s, "2026-02-26", entry("10:00", "new", "new note")+entry("11:00", "new", "later note"))

	entries := s.Recent(2)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Project != "new" || entries[0].Time != "10:00" {
		t.Fatalf("first = %+v", entries[0])
	}
	if entries[1].Time != "11:00" {
		t.Fatalf("second = %+v", entries[1])
	}
}

func TestRecentCapsAtSevenDayFiles(t *testing.T) {
	s := newTestStore(t)
	for day := 1; day <= 9; day++ {
		date := fmt.Sprintf("2026-02-%02d", day)
		writeDay(t, s, date, entry("12:00", "p", "note for "+date))
	}

	entries := s.Recent(100)
	if len(entries) != 7 {
		t.Fatalf("len = %d, want 7 (one per scanned day file)", len(entries))
	}
	// Oldest two day files must not be read at all.
	for _, e := range entries {
		if e.Date == "2026-02-01" || e.Date == "2026-02-02" {
			t.Fatalf("entry from day file beyond the cap: %+v", e)
		}
	}
}

func TestMalformedHeadersAreDropped(t *testing.T) {
	s := newTestStore(t)
	body := "# Journal — 2026-02-26\n" +
		"\n## no separator here\nlost\n" +
		"\n## — missing-time\nlost too\n" +
		"\n## 11:00 — \nmissing project\n" +
		"\n## 10:00 — good\nkept\n"
	writeDay(t, s, "2026-02-26", body)

	entries := s.Recent(10)
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1: %+v", len(entries), entries)
	}
	if entries[0].Project != "good" || entries[0].Note != "kept" {
		t.Fatalf("entry = %+v", entries[0])
	}
}

func TestSearchMatchesProjectAndNote(t *testing.T) {
	s := newTestStore(t)
	writeDay(t, s, "2026-02-26",
		entry("10:00", "website", "deployed")+
			entry("11:00", "api", "fixed the Website link")+
			entry("12:00", "api", "unrelated"))

	matches := s.Search("website")
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(matches), matches)
	}
	if len(s.Search("nothing-matches")) != 0 {
		t.Fatal("expected no matches")
	}
}

func TestRecentEmptyStore(t *testing.T) {
	if got := newTestStore(t).Recent(5); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func entry(tm, project, note string) string {
	return "\n## " + tm + " — " + project + "\n" + note + "\n"
}

func writeDay(t *testing.T, s *Store, date, content string) {
	t.Helper()
	if !strings.HasPrefix(content, "#") {
		content = "# Journal — " + date + "\n" + content
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), date+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
