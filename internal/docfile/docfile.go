// Package docfile parses and patches markdown documents with optional
// YAML frontmatter. It is deliberately fault tolerant: malformed YAML,
// missing delimiters, and missing files all degrade to an empty or
// partial Document instead of an error, because overview files are
// hand-edited and must never take the dashboard down with them.
package docfile

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed markdown file with optional YAML frontmatter.
// Sections are keyed by the text of their `## ` heading and kept in
// order of first appearance; a duplicate heading overwrites the earlier
// content under the same key.
type Document struct {
	Frontmatter map[string]any
	Body        string
	Title       string

	sections map[string]string
	headings []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Frontmatter: map[string]any{},
		sections:    map[string]string{},
	}
}

// Parse parses markdown text with an optional frontmatter block.
//
// The frontmatter block is recognized only when the first line is
// exactly `---` and a later line is exactly `---`. If the closing fence
// is missing the entire text (opening fence included) is treated as
// body. A YAML block that fails to parse, or parses to something other
// than a mapping, yields an empty frontmatter map; body extraction
// still runs on the text after the closing fence.
func Parse(text string) *Document {
	doc := NewDocument()
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		doc.Body = text
		doc.extractMetadata()
		return doc
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		// No closing fence. Keep the whole text as body.
		doc.Body = text
		doc.extractMetadata()
		return doc
	}

	yamlText := strings.Join(lines[1:end], "\n")
	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(yamlText), &parsed); err == nil && parsed != nil {
		doc.Frontmatter = parsed
	}

	doc.Body = strings.Join(lines[end+1:], "\n")
	doc.extractMetadata()
	return doc
}

// ParseFile reads and parses the file at path. A missing or unreadable
// file yields an empty document.
func ParseFile(path string) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewDocument()
	}
	return Parse(string(data))
}

func (d *Document) extractMetadata() {
	lines := strings.Split(d.Body, "\n")

	for _, line := range lines {
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			d.Title = strings.TrimSpace(line[2:])
			break
		}
	}

	var heading string
	var content []string
	flush := func() {
		if heading == "" {
			return
		}
		if _, seen := d.sections[heading]; !seen {
			d.headings = append(d.headings, heading)
		}
		d.sections[heading] = strings.TrimSpace(strings.Join(content, "\n"))
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
			heading = strings.TrimSpace(line[3:])
			content = content[:0]
			continue
		}
		if heading != "" {
			content = append(content, line)
		}
	}
	flush()
}

// Get returns a frontmatter value as a trimmed string. A missing key,
// a null value, the literal string "null", or a value that trims to
// empty all return def. A list value collapses to its first element so
// that `Status:\n- Active` still reads as "Active"; only an empty list
// falls back to def.
func (d *Document) Get(key, def string) string {
	val, ok := d.Frontmatter[key]
	if !ok || val == nil {
		return def
	}
	if list, isList := val.([]any); isList {
		if len(list) == 0 {
			return def
		}
		return strings.TrimSpace(stringify(list[0]))
	}
	s := strings.TrimSpace(stringify(val))
	if s == "" || s == "null" {
		return def
	}
	return s
}

// Section returns the content under a `## heading`, or "".
func (d *Document) Section(heading string) string {
	return d.sections[heading]
}

// SectionHeadings returns headings in order of first appearance.
func (d *Document) SectionHeadings() []string {
	return append([]string(nil), d.headings...)
}

// BodyWithout returns the body with the named `## ` sections removed.
func (d *Document) BodyWithout(headings ...string) string {
	skip := false
	var out []string
	for _, line := range strings.Split(d.Body, "\n") {
		if strings.HasPrefix(line, "## ") {
			h := strings.TrimSpace(line[3:])
			skip = false
			for _, target := range headings {
				if h == target {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
		}
		if !skip {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Merge returns primary's body with every non-empty section that exists
// in secondary but not in primary appended at the end, in secondary's
// order. Sections already present in primary are never overwritten.
func Merge(primary, secondary *Document) string {
	merged := primary.Body
	for _, heading := range secondary.headings {
		if _, exists := primary.sections[heading]; exists {
			continue
		}
		content := secondary.sections[heading]
		if strings.TrimSpace(content) == "" {
			continue
		}
		merged += "\n\n## " + heading + "\n" + content
	}
	return merged
}

func stringify(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(val); err != nil {
		return ""
	}
	_ = enc.Close()
	return strings.TrimRight(buf.String(), "\n")
}
