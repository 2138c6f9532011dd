package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sawantshivaji1997/vaultsync/src/logging"
	"github.com/sawantshivaji1997/vaultsync/src/markdown"
	"github.com/sawantshivaji1997/vaultsync/src/utils"
)

type FileReader struct {
	baseDirPath string
}

// Function to get a Reader for the vault rooted at basePath. The directory
// must already exist.
func GetFileReader(basePath string) (Reader, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve vault path %s", basePath)
	}

	err = utils.CheckIfDirExists(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "vault path %s is not usable", absPath)
	}

	return &FileReader{
		baseDirPath: absPath,
	}, nil
}

// Walk the vault and return the sorted absolute paths of all markdown files.
// Hidden files and directories are skipped. When filter is non-empty only
// files whose vault relative path contains it are returned. Only an
// unreadable vault root is an error; unreadable entries below it are
// skipped with a warning.
func (r *FileReader) ListMarkdownFiles(ctx context.Context,
	filter string) ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(r.baseDirPath, r.visitor(ctx, filter, &files))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk vault %s", r.baseDirPath)
	}

	sort.Strings(files)
	return files, nil
}

func (r *FileReader) visitor(ctx context.Context, filter string,
	files *[]string) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if walkErr != nil {
			if path == r.baseDirPath || d == nil {
				return walkErr
			}
			zerolog.Ctx(ctx).Warn().Err(walkErr).Str(logging.FilePath, path).
				Msg(logging.VaultEntrySkipped)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(r.baseDirPath, path)
		if err != nil {
			return err
		}

		if relPath != "." && utils.IsHiddenPath(relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || filepath.Ext(d.Name()) != MARKDOWN_EXT {
			return nil
		}

		if filter != "" && !strings.Contains(filepath.ToSlash(relPath), filter) {
			return nil
		}

		*files = append(*files, path)
		return nil
	}
}

func (r *FileReader) ReadDocument(ctx context.Context,
	path string) (*markdown.Document, error) {
	return ReadDocument(path)
}

// Read a single markdown file from anywhere on disk
func ReadDocument(path string) (*markdown.Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	dataBytes, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", absPath)
	}

	return markdown.NewDocument(absPath, string(dataBytes)), nil
}
