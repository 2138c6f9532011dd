package vault

import (
	"context"

	"github.com/sawantshivaji1997/vaultsync/src/markdown"
)

const MARKDOWN_EXT = ".md"

type Reader interface {
	ListMarkdownFiles(context.Context, string) ([]string, error)
	ReadDocument(context.Context, string) (*markdown.Document, error)
}
