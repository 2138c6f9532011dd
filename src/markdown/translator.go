package markdown

import (
	"regexp"
	"strings"

	"github.com/sawantshivaji1997/vaultsync/src/utils"
)

const CODE_FENCE = "```"

var (
	imageRe       = regexp.MustCompile(`^!\[\[\s*([^\[\]|]+?)\s*(?:\|[^\[\]]*)?\]\]$`)
	inlineImageRe = regexp.MustCompile(`!\[\[\s*([^\[\]|]+?)\s*(?:\|[^\[\]]*)?\]\]`)
	headingRe     = regexp.MustCompile(`^(#+)\s+(.*)$`)
	todoRe        = regexp.MustCompile(`^-\s+\[([ xX])\](?:\s+(.*))?$`)
	bulletRe      = regexp.MustCompile(`^[-*]\s+(.*)$`)
	quoteRe       = regexp.MustCompile(`^>\s?(.*)$`)
)

// lineRule maps a line pattern to the block it produces. Rules are tried in
// order and the first match wins.
type lineRule struct {
	pattern *regexp.Regexp
	build   func(s *translation, match []string) Block
}

var lineRules = []lineRule{
	{
		pattern: imageRe,
		build: func(s *translation, match []string) Block {
			return s.image(match[1])
		},
	},
	{
		pattern: headingRe,
		build: func(s *translation, match []string) Block {
			return Heading{
				Level: clampHeadingLevel(len(match[1])),
				Text:  strings.TrimSpace(match[2]),
			}
		},
	},
	{
		pattern: todoRe,
		build: func(s *translation, match []string) Block {
			return ToDo{
				Text:    strings.TrimSpace(match[2]),
				Checked: strings.EqualFold(match[1], "x"),
			}
		},
	},
	{
		pattern: bulletRe,
		build: func(s *translation, match []string) Block {
			return BulletedItem{Text: strings.TrimSpace(match[1])}
		},
	},
	{
		pattern: quoteRe,
		build: func(s *translation, match []string) Block {
			return Quote{Text: strings.TrimSpace(match[1])}
		},
	},
}

// Translator turns the text of a markdown note into page blocks. It does no
// I/O of its own apart from the image lookups done by its resolver.
type Translator struct {
	resolver ImageResolver
}

// Returns a Translator using resolver for image lookups. A nil resolver means
// images are looked up on the local disk.
func NewTranslator(resolver ImageResolver) *Translator {
	if resolver == nil {
		resolver = FileSystemResolver
	}
	return &Translator{
		resolver: resolver,
	}
}

// translation is the state of a single pass over one document
type translation struct {
	resolver  ImageResolver
	dir       string
	blocks    []Block
	paragraph []string
	code      *Code
	codeLines []string
}

func (t *Translator) Translate(doc *Document) *Result {
	lines := splitLines(doc.Text)
	fm, consumed := splitFrontmatter(lines)
	if fm == nil {
		fm = Frontmatter{}
	}

	s := &translation{
		resolver: t.resolver,
		dir:      doc.Dir,
		blocks:   []Block{},
	}

	for _, line := range lines[consumed:] {
		s.consume(line)
	}
	s.finish()

	title, ok := fm.Title()
	if !ok {
		title = utils.FileNameWithoutExt(doc.Path)
	}

	return &Result{
		Title:       title,
		Frontmatter: fm,
		Blocks:      s.blocks,
	}
}

func (s *translation) consume(line string) {
	trimmed := strings.TrimSpace(line)

	if s.code != nil {
		if strings.HasPrefix(trimmed, CODE_FENCE) {
			s.closeCode()
			return
		}
		s.codeLines = append(s.codeLines, line)
		return
	}

	if strings.HasPrefix(trimmed, CODE_FENCE) {
		s.flushParagraph()
		s.openCode(strings.TrimPrefix(trimmed, CODE_FENCE))
		return
	}

	if trimmed == "" {
		s.flushParagraph()
		return
	}

	for _, rule := range lineRules {
		if match := rule.pattern.FindStringSubmatch(trimmed); match != nil {
			s.flushParagraph()
			s.appendBlock(rule.build(s, match))
			return
		}
	}

	s.appendParagraphLine(line)
}

// appendBlock adds a classified block. Images embedded in its text are taken
// out and follow it as blocks of their own; a block left with no text is
// dropped in favour of its images.
func (s *translation) appendBlock(block Block) {
	var text string
	var names []string

	switch b := block.(type) {
	case Heading:
		b.Text, names = detachImages(b.Text)
		text, block = b.Text, b
	case ToDo:
		b.Text, names = detachImages(b.Text)
		text, block = b.Text, b
	case BulletedItem:
		b.Text, names = detachImages(b.Text)
		text, block = b.Text, b
	case Quote:
		b.Text, names = detachImages(b.Text)
		text, block = b.Text, b
	}

	if len(names) == 0 || text != "" {
		s.blocks = append(s.blocks, block)
	}
	for _, name := range names {
		s.blocks = append(s.blocks, s.image(name))
	}
}

// detachImages returns text without its image tags and the tag names in
// order of appearance
func detachImages(text string) (string, []string) {
	matches := inlineImageRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	stripped := strings.Fields(inlineImageRe.ReplaceAllString(text, " "))
	return strings.Join(stripped, " "), names
}

// finish flushes whatever is still open at end of input. An unterminated
// code fence keeps everything after it as code.
func (s *translation) finish() {
	if s.code != nil {
		s.closeCode()
	}
	s.flushParagraph()
}

func (s *translation) openCode(info string) {
	language := ""
	if fields := strings.Fields(info); len(fields) > 0 {
		language = fields[0]
	}
	s.code = &Code{Language: language}
	s.codeLines = []string{}
}

func (s *translation) closeCode() {
	s.code.Text = strings.Join(s.codeLines, "\n")
	s.blocks = append(s.blocks, *s.code)
	s.code = nil
	s.codeLines = nil
}

// appendParagraphLine adds a line to the open paragraph. Images embedded in
// the line split the paragraph so that each one becomes its own block.
func (s *translation) appendParagraphLine(line string) {
	locs := inlineImageRe.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		s.paragraph = append(s.paragraph, line)
		return
	}

	prev := 0
	for _, loc := range locs {
		if before := line[prev:loc[0]]; strings.TrimSpace(before) != "" {
			s.paragraph = append(s.paragraph, before)
		}
		s.flushParagraph()
		s.blocks = append(s.blocks, s.image(line[loc[2]:loc[3]]))
		prev = loc[1]
	}

	if rest := line[prev:]; strings.TrimSpace(rest) != "" {
		s.paragraph = append(s.paragraph, rest)
	}
}

func (s *translation) flushParagraph() {
	if len(s.paragraph) == 0 {
		return
	}

	text := strings.TrimSpace(strings.Join(s.paragraph, "\n"))
	s.paragraph = nil
	if text != "" {
		s.blocks = append(s.blocks, Paragraph{Text: text})
	}
}

func (s *translation) image(name string) Block {
	name = strings.TrimSpace(name)
	path, ok := s.resolver.ResolveImage(s.dir, name)
	if !ok {
		path = ""
	}
	return Image{Name: name, Path: path}
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
