package markdown

const (
	MIN_HEADING_LEVEL = 1
	MAX_HEADING_LEVEL = 3
)

// Block is one unit of page content. The set of implementations is closed:
// Heading, Paragraph, BulletedItem, ToDo, Code, Quote and Image.
type Block interface {
	isBlock()
}

type Heading struct {
	Level int
	Text  string
}

type Paragraph struct {
	Text string
}

type BulletedItem struct {
	Text string
}

type ToDo struct {
	Text    string
	Checked bool
}

// Code holds the verbatim lines of a fenced code block. Language is empty when
// the opening fence carried no tag.
type Code struct {
	Language string
	Text     string
}

type Quote struct {
	Text string
}

// Image stands in for an embedded `![[name]]` reference. Path is the file the
// reference resolved to inside the vault, or empty when nothing was found.
type Image struct {
	Name string
	Path string
}

func (Heading) isBlock()      {}
func (Paragraph) isBlock()    {}
func (BulletedItem) isBlock() {}
func (ToDo) isBlock()         {}
func (Code) isBlock()         {}
func (Quote) isBlock()        {}
func (Image) isBlock()        {}

// Resolved reports whether the image file was found on disk
func (i Image) Resolved() bool {
	return i.Path != ""
}

func clampHeadingLevel(level int) int {
	if level < MIN_HEADING_LEVEL {
		return MIN_HEADING_LEVEL
	}
	if level > MAX_HEADING_LEVEL {
		return MAX_HEADING_LEVEL
	}
	return level
}
