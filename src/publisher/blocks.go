package publisher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jomei/notionapi"
	"github.com/sawantshivaji1997/vaultsync/src/markdown"
)

const (
	// Notion limit on the content of a single rich text object
	MAX_RICH_TEXT_LENGTH     = 2000
	DEFAULT_CODE_LANGUAGE    = "plain text"
	IMAGE_PLACEHOLDER_FORMAT = "[📷 图片: %s]"
)

// Short fence tags used in notes mapped to the language names Notion accepts
var codeLanguageAliases = map[string]string{
	"":           DEFAULT_CODE_LANGUAGE,
	"text":       DEFAULT_CODE_LANGUAGE,
	"txt":        DEFAULT_CODE_LANGUAGE,
	"plaintext":  DEFAULT_CODE_LANGUAGE,
	"py":         "python",
	"js":         "javascript",
	"ts":         "typescript",
	"sh":         "shell",
	"zsh":        "shell",
	"console":    "shell",
	"yml":        "yaml",
	"rb":         "ruby",
	"rs":         "rust",
	"golang":     "go",
	"c++":        "c++",
	"cpp":        "c++",
	"cs":         "c#",
	"csharp":     "c#",
	"kt":         "kotlin",
	"md":         "markdown",
	"dockerfile": "docker",
	"ps1":        "powershell",
	"tex":        "latex",
}

// Languages Notion accepts on a code block, anything else is rejected
var notionCodeLanguages = map[string]struct{}{}

func init() {
	for _, language := range []string{
		"abap", "arduino", "bash", "basic", "c", "clojure", "coffeescript",
		"c++", "c#", "css", "dart", "diff", "docker", "elixir", "elm",
		"erlang", "flow", "fortran", "f#", "gherkin", "glsl", "go", "graphql",
		"groovy", "haskell", "html", "java", "javascript", "json", "julia",
		"kotlin", "latex", "less", "lisp", "livescript", "lua", "makefile",
		"markdown", "markup", "matlab", "mermaid", "nix", "objective-c",
		"ocaml", "pascal", "perl", "php", "plain text", "powershell",
		"prolog", "protobuf", "python", "r", "reason", "ruby", "rust", "sass",
		"scala", "scheme", "scss", "shell", "sql", "swift", "typescript",
		"vb.net", "verilog", "vhdl", "visual basic", "webassembly", "xml",
		"yaml", "java/c/c++/c#",
	} {
		notionCodeLanguages[language] = struct{}{}
	}
}

// Returns the Notion code language for a fence tag. Tags Notion does not
// know, such as dataview, become plain text.
func CodeLanguage(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if language, found := codeLanguageAliases[tag]; found {
		return language
	}
	if _, found := notionCodeLanguages[tag]; found {
		return tag
	}
	return DEFAULT_CODE_LANGUAGE
}

// Returns the text used in place of an image that cannot be uploaded
func ImagePlaceholder(name string) string {
	return fmt.Sprintf(IMAGE_PLACEHOLDER_FORMAT, name)
}

// Map translated blocks one-to-one onto Notion blocks
func ToNotionBlocks(blocks []markdown.Block) []notionapi.Block {
	notionBlocks := make([]notionapi.Block, 0, len(blocks))
	for _, block := range blocks {
		notionBlocks = append(notionBlocks, toNotionBlock(block))
	}
	return notionBlocks
}

func basicBlock(blockType notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   blockType,
	}
}

func toNotionBlock(block markdown.Block) notionapi.Block {
	switch b := block.(type) {
	case markdown.Heading:
		return headingBlock(b)
	case markdown.BulletedItem:
		return &notionapi.BulletedListItemBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeBulletedListItem),
			BulletedListItem: notionapi.ListItem{
				RichText: richText(b.Text),
			},
		}
	case markdown.ToDo:
		return &notionapi.ToDoBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeToDo),
			ToDo: notionapi.ToDo{
				RichText: richText(b.Text),
				Checked:  b.Checked,
			},
		}
	case markdown.Code:
		return &notionapi.CodeBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeCode),
			Code: notionapi.Code{
				RichText: richText(b.Text),
				Language: CodeLanguage(b.Language),
			},
		}
	case markdown.Quote:
		return &notionapi.QuoteBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeQuote),
			Quote: notionapi.Quote{
				RichText: richText(b.Text),
			},
		}
	case markdown.Image:
		text := richText(ImagePlaceholder(b.Name))
		for i := range text {
			text[i].Annotations = &notionapi.Annotations{Code: true}
		}
		return paragraphBlock(text)
	case markdown.Paragraph:
		return paragraphBlock(richText(b.Text))
	}

	// Unreachable while the Block set is closed
	panic(fmt.Sprintf("unknown block type %T", block))
}

func headingBlock(h markdown.Heading) notionapi.Block {
	heading := notionapi.Heading{
		RichText: richText(h.Text),
	}

	switch h.Level {
	case 1:
		return &notionapi.Heading1Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading1),
			Heading1:   heading,
		}
	case 2:
		return &notionapi.Heading2Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
			Heading2:   heading,
		}
	default:
		return &notionapi.Heading3Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading3),
			Heading3:   heading,
		}
	}
}

func paragraphBlock(text []notionapi.RichText) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
		Paragraph: notionapi.Paragraph{
			RichText: text,
		},
	}
}

// richText splits content into as many text objects as needed to stay under
// the Notion length limit
func richText(content string) []notionapi.RichText {
	chunks := splitText(content, MAX_RICH_TEXT_LENGTH)
	text := make([]notionapi.RichText, 0, len(chunks))
	for _, chunk := range chunks {
		text = append(text, notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: chunk},
		})
	}
	return text
}

// splitText cuts s into pieces of at most limit runes without breaking a
// multi-byte character. An empty string yields no pieces.
func splitText(s string, limit int) []string {
	chunks := []string{}
	for len(s) > 0 {
		if utf8.RuneCountInString(s) <= limit {
			chunks = append(chunks, s)
			break
		}

		end, count := 0, 0
		for end < len(s) && count < limit {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
