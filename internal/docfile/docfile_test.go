package docfile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `---
Status: Active
Priority: High
Next_action: Ship the thing
Tags:
  - web
  - infra
---

# Demo Project

## What is this?
A demo.

## Blockers
none
`

func TestParseFrontmatterAndSections(t *testing.T) {
	doc := Parse(sampleDoc)

	if got := doc.Get("Status", ""); got != "Active" {
		t.Fatalf("Status = %q, want Active", got)
	}
	if got := doc.Get("Priority", ""); got != "High" {
		t.Fatalf("Priority = %q, want High", got)
	}
	if doc.Title != "Demo Project" {
		t.Fatalf("Title = %q, want Demo Project", doc.Title)
	}
	if got := doc.Section("What is this?"); got != "A demo." {
		t.Fatalf("section = %q, want %q", got, "A demo.")
	}
	if got := doc.Section("Blockers"); got != "none" {
		t.Fatalf("Blockers = %q, want none", got)
	}
	want := []string{"What is this?", "Blockers"}
	if diff := cmp.Diff(want, doc.SectionHeadings()); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRoundTrip(t *testing.T) {
	doc := Parse(sampleDoc)

	// Reconstructing fences + frontmatter + body must reparse to the
	// same frontmatter and an identical body.
	rebuilt := "---\nStatus: Active\nPriority: High\nNext_action: Ship the thing\nTags:\n  - web\n  - infra\n---" +
		"\n" + doc.Body
	again := Parse(rebuilt)

	if diff := cmp.Diff(doc.Frontmatter, again.Frontmatter); diff != "" {
		t.Fatalf("frontmatter mismatch (-first +second):\n%s", diff)
	}
	if again.Body != doc.Body {
		t.Fatalf("body mismatch:\n%q\nvs\n%q", again.Body, doc.Body)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	text := "# Just a doc\n\n## Notes\nhello\n"
	doc := Parse(text)
	if len(doc.Frontmatter) != 0 {
		t.Fatalf("expected empty frontmatter, got %v", doc.Frontmatter)
	}
	if doc.Body != text {
		t.Fatalf("body changed: %q", doc.Body)
	}
	if doc.Title != "Just a doc" {
		t.Fatalf("Title = %q", doc.Title)
	}
}

func TestParseUnclosedFenceKeepsWholeText(t *testing.T) {
	text := "---\nStatus: Active\n# Title\nbody without closing fence\n"
	doc := Parse(text)
	if len(doc.Frontmatter) != 0 {
		t.Fatalf("expected empty frontmatter, got %v", doc.Frontmatter)
	}
	if doc.Body != text {
		t.Fatalf("expected whole text as body, got %q", doc.Body)
	}
}

func TestParseMalformedYAMLNeverFails(t *testing.T) {
	text := "---\nStatus: [unclosed\n---\n# Title\n\n## Notes\nstill here\n"
	doc := Parse(text)
	if len(doc.Frontmatter) != 0 {
		t.Fatalf("expected empty frontmatter, got %v", doc.Frontmatter)
	}
	if !strings.Contains(doc.Body, "still here") {
		t.Fatalf("body lost: %q", doc.Body)
	}
	if doc.Title != "Title" {
		t.Fatalf("Title = %q", doc.Title)
	}
}

func TestParseNonMappingYAML(t *testing.T) {
	doc := Parse("---\njust a string\n---\nbody\n")
	if len(doc.Frontmatter) != 0 {
		t.Fatalf("expected empty frontmatter, got %v", doc.Frontmatter)
	}
	if doc.Body != "body\n" {
		t.Fatalf("body = %q", doc.Body)
	}
}

func TestGetListCollapsesToFirstElement(t *testing.T) {
	doc := Parse("---\nStatus:\n- Active\n- Old\n---\nbody\n")
	if got := doc.Get("Status", "Unknown"); got != "Active" {
		t.Fatalf("Get = %q, want Active", got)
	}

	// Only an empty list falls back; a first element that happens to
	// spell "null" is still returned as is.
	doc = Parse("---\nStatus:\n- \"null\"\n- Active\nEmpty: []\n---\nbody\n")
	if got := doc.Get("Status", "Unknown"); got != "null" {
		t.Fatalf("Get = %q, want null", got)
	}
	if got := doc.Get("Empty", "Unknown"); got != "Unknown" {
		t.Fatalf("Get(Empty) = %q, want Unknown", got)
	}
}

func TestGetDefaults(t *testing.T) {
	doc := Parse("---\nA: null\nB: \"null\"\nC: \"   \"\nD:\n---\nbody\n")
	for _, key := range []string{"A", "B", "C", "D", "Missing"} {
		if got := doc.Get(key, "fallback"); got != "fallback" {
			t.Fatalf("Get(%s) = %q, want fallback", key, got)
		}
	}
}

func TestGetStringifiesScalars(t *testing.T) {
	doc := Parse("---\nCount: 3\nDone: true\n---\n")
	if got := doc.Get("Count", ""); got != "3" {
		t.Fatalf("Count = %q, want 3", got)
	}
	if got := doc.Get("Done", ""); got != "true" {
		t.Fatalf("Done = %q, want true", got)
	}
}

func TestDuplicateHeadingLastWins(t *testing.T) {
	doc := Parse("## Notes\nfirst\n\n## Other\nmiddle\n\n## Notes\nsecond\n")
	if got := doc.Section("Notes"); got != "second" {
		t.Fatalf("Section = %q, want second", got)
	}
	want := []string{"Notes", "Other"}
	if diff := cmp.Diff(want, doc.SectionHeadings()); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestBodyWithout(t *testing.T) {
	doc := Parse("# T\n\n## Keep\nyes\n\n## Drop\nno\n")
	got := doc.BodyWithout("Drop")
	if strings.Contains(got, "Drop") || strings.Contains(got, "no") {
		t.Fatalf("section not removed: %q", got)
	}
	if !strings.Contains(got, "## Keep") || !strings.Contains(got, "yes") {
		t.Fatalf("sibling section damaged: %q", got)
	}
}

func TestMergeAppendsOnlyMissingSections(t *testing.T) {
	primary := Parse("## A\nprimary a\n\n## B\nprimary b\n")
	secondary := Parse("## B\nsecondary b\n\n## C\nsecondary c\n\n## Empty\n\n")

	merged := Merge(primary, secondary)

	if !strings.Contains(merged, "primary b") || strings.Contains(merged, "secondary b") {
		t.Fatalf("primary section overwritten: %q", merged)
	}
	if !strings.Contains(merged, "## C\nsecondary c") {
		t.Fatalf("missing section not appended: %q", merged)
	}
	if strings.Contains(merged, "## Empty") {
		t.Fatalf("empty section appended: %q", merged)
	}
}

func TestParseFileMissing(t *testing.T) {
	doc := ParseFile("/nonexistent/overview.md")
	if doc == nil || len(doc.Frontmatter) != 0 || doc.Body != "" {
		t.Fatalf("expected empty document, got %+v", doc)
	}
}
