package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sawantshivaji1997/vaultsync/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorWalkErrors(t *testing.T) {
	dir := testutil.WriteVault(t, map[string]string{
		"locked/note.md": "x",
		"note.md":        "y",
	})
	errDenied := fs.ErrPermission

	dirEntry := func(path string) fs.DirEntry {
		info, err := os.Stat(path)
		require.Nil(t, err)
		return fs.FileInfoToDirEntry(info)
	}

	tests := []struct {
		name  string
		path  string
		entry fs.DirEntry
		want  error
	}{
		{
			name:  "Unreadable vault root",
			path:  dir,
			entry: nil,
			want:  errDenied,
		},
		{
			name:  "Unreadable directory below the root",
			path:  filepath.Join(dir, "locked"),
			entry: dirEntry(filepath.Join(dir, "locked")),
			want:  filepath.SkipDir,
		},
		{
			name:  "Unreadable file below the root",
			path:  filepath.Join(dir, "note.md"),
			entry: dirEntry(filepath.Join(dir, "note.md")),
			want:  nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := &FileReader{baseDirPath: dir}
			files := []string{}

			err := r.visitor(context.Background(), "", &files)(test.path,
				test.entry, errDenied)
			assert.Equal(t, test.want, err)
			assert.Empty(t, files)
		})
	}
}

func TestListMarkdownFilesSkipsUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	dir := testutil.WriteVault(t, map[string]string{
		"locked/note.md": "x",
		"open/note.md":   "y",
	})
	locked := filepath.Join(dir, "locked")
	require.Nil(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	reader, err := GetFileReader(dir)
	require.Nil(t, err)

	files, err := reader.ListMarkdownFiles(context.Background(), "")
	require.Nil(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "open", "note.md")}, files)
}
