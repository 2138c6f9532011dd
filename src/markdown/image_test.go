package markdown_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sawantshivaji1997/vaultsync/src/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.Nil(t, os.WriteFile(path, []byte("img"), 0600))
}

func TestResolveImage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "images", "both.png"))
	writeFile(t, filepath.Join(dir, "attachments", "both.png"))
	writeFile(t, filepath.Join(dir, "attachments", "attached.jpg"))
	writeFile(t, filepath.Join(dir, "sibling.gif"))
	writeFile(t, filepath.Join(dir, "images", "noext.webp"))

	tests := []struct {
		name      string
		imageName string
		wantPath  string
		found     bool
	}{
		{
			name:      "Images directory wins",
			imageName: "both.png",
			wantPath:  filepath.Join(dir, "images", "both.png"),
			found:     true,
		},
		{
			name:      "Attachments directory",
			imageName: "attached.jpg",
			wantPath:  filepath.Join(dir, "attachments", "attached.jpg"),
			found:     true,
		},
		{
			name:      "Sibling file",
			imageName: "sibling.gif",
			wantPath:  filepath.Join(dir, "sibling.gif"),
			found:     true,
		},
		{
			name:      "Path prefix is ignored",
			imageName: "./images/sibling.gif",
			wantPath:  filepath.Join(dir, "sibling.gif"),
			found:     true,
		},
		{
			name:      "Missing extension is guessed",
			imageName: "noext",
			wantPath:  filepath.Join(dir, "images", "noext.webp"),
			found:     true,
		},
		{
			name:      "Not found",
			imageName: "missing.png",
			wantPath:  "",
			found:     false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path, found := markdown.ResolveImage(dir, test.imageName)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.wantPath, path)
		})
	}
}
