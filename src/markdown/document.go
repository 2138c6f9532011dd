package markdown

import (
	"path/filepath"
)

// Document is a single markdown file read from the vault
type Document struct {
	Path string
	Dir  string
	Text string
}

func NewDocument(path string, text string) *Document {
	return &Document{
		Path: path,
		Dir:  filepath.Dir(path),
		Text: text,
	}
}

// Result is the outcome of translating one Document
type Result struct {
	Title       string
	Frontmatter Frontmatter
	Blocks      []Block
}

// Returns the image blocks whose file could not be found in the vault
func (r *Result) UnresolvedImages() []Image {
	images := []Image{}
	for _, block := range r.Blocks {
		if image, ok := block.(Image); ok && !image.Resolved() {
			images = append(images, image)
		}
	}
	return images
}
