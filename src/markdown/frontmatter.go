package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FRONTMATTER_DELIMITER = "---"
	TITLE_KEY             = "title"
)

// Frontmatter holds the top level key/value pairs of the leading `---` block.
// Values are kept as the raw strings found in the file.
type Frontmatter map[string]string

// Returns the non-empty title value, if any
func (f Frontmatter) Title() (string, bool) {
	title := strings.TrimSpace(f[TITLE_KEY])
	return title, title != ""
}

// splitFrontmatter looks for a `---` delimited block starting at the first
// line. It returns the parsed block and the number of lines it spans, or nil
// and zero when the document has no terminated frontmatter.
func splitFrontmatter(lines []string) (Frontmatter, int) {
	if len(lines) == 0 ||
		strings.TrimRight(lines[0], " \t") != FRONTMATTER_DELIMITER {
		return nil, 0
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == FRONTMATTER_DELIMITER {
			return decodeFrontmatter(lines[1:i]), i + 1
		}
	}

	return nil, 0
}

// ParseFrontmatter returns the frontmatter of the given markdown text. The
// result is empty, never nil, when the text has none.
func ParseFrontmatter(text string) Frontmatter {
	fm, _ := splitFrontmatter(splitLines(text))
	if fm == nil {
		return Frontmatter{}
	}
	return fm
}

func decodeFrontmatter(lines []string) Frontmatter {
	var root yaml.Node
	err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &root)
	if err == nil {
		if fm, ok := frontmatterFromNode(&root); ok {
			return fm
		}
	}

	return frontmatterFromLines(lines)
}

func frontmatterFromNode(root *yaml.Node) (Frontmatter, bool) {
	fm := Frontmatter{}
	if len(root.Content) == 0 {
		return fm, true
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, false
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		switch value.Kind {
		case yaml.ScalarNode:
			fm[key.Value] = value.Value
		case yaml.SequenceNode:
			items := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				if item.Kind == yaml.ScalarNode {
					items = append(items, item.Value)
				}
			}
			fm[key.Value] = strings.Join(items, ", ")
		}
	}

	return fm, true
}

// Fallback for blocks that are not valid YAML: every `key: value` line is
// taken as is
func frontmatterFromLines(lines []string) Frontmatter {
	fm := Frontmatter{}
	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		fm[key] = strings.TrimSpace(line[idx+1:])
	}
	return fm
}
