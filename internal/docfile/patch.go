package docfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// WriteField rewrites one frontmatter key in place. The rest of the
// file, including other keys, comments, key order, and the whole body,
// is left byte for byte as it was. This is a line-level patch, not a YAML
// round trip: re-serializing the block would destroy formatting the
// model doesn't capture.
//
// If the key's existing value was a YAML list, the immediately
// following `- ` lines are deleted along with it, collapsing the key
// to a scalar. A key not present yet is inserted just before the
// closing fence. A file without a complete frontmatter block is left
// untouched. A missing file is a no-op.
func WriteField(path, key, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("docfile: read %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")

	formatted := key + ": " + value
	if strings.Contains(value, " ") {
		formatted = key + ": " + quote(value)
	}

	inFrontmatter := false
	keyLine := -1
	fenceEnd := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			if !inFrontmatter {
				inFrontmatter = true
				continue
			}
			fenceEnd = i
			break
		}
		if inFrontmatter && strings.HasPrefix(line, key+":") {
			keyLine = i
			break
		}
	}

	switch {
	case keyLine >= 0:
		lines[keyLine] = formatted
		// Drop list items that belonged to the old value.
		for keyLine+1 < len(lines) && strings.HasPrefix(lines[keyLine+1], "- ") {
			lines = append(lines[:keyLine+1], lines[keyLine+2:]...)
		}
	case fenceEnd > 0:
		lines = append(lines[:fenceEnd], append([]string{formatted}, lines[fenceEnd:]...)...)
	default:
		// No frontmatter block to patch.
		return nil
	}

	return writeLines(path, lines)
}

// WriteSection replaces the content under `## heading` with newContent,
// keeping the heading line, a blank line after it, and a blank line
// before the next section. Everything outside the section is preserved
// verbatim. If the heading doesn't exist a new section is appended at
// the end of the file. A missing file is a no-op.
func WriteSection(path, heading, newContent string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("docfile: read %s: %w", path, err)
	}
	text := string(data)
	lines := strings.Split(text, "\n")

	bodyStart := 0
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				bodyStart = i + 1
				break
			}
		}
	}

	sectionStart := -1
	sectionEnd := len(lines)
	for i := bodyStart; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "## ") {
			continue
		}
		if sectionStart >= 0 {
			sectionEnd = i
			break
		}
		if strings.TrimSpace(lines[i][3:]) == heading {
			sectionStart = i
		}
	}

	if sectionStart < 0 {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += "\n## " + heading + "\n\n" + newContent + "\n"
		return atomic.WriteFile(path, strings.NewReader(text))
	}

	replacement := []string{lines[sectionStart], ""}
	if strings.TrimSpace(newContent) != "" {
		replacement = append(replacement, strings.Split(newContent, "\n")...)
	}
	replacement = append(replacement, "")

	patched := make([]string, 0, len(lines))
	patched = append(patched, lines[:sectionStart]...)
	patched = append(patched, replacement...)
	patched = append(patched, lines[sectionEnd:]...)
	return writeLines(path, patched)
}

func writeLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("docfile: write %s: %w", path, err)
	}
	return nil
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}
