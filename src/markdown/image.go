package markdown

import (
	"path/filepath"

	"github.com/sawantshivaji1997/vaultsync/src/utils"
)

// Directories, relative to the note, searched for an embedded image. The
// empty entry is the note's own directory.
var imageSearchDirs = []string{"images", "attachments", ""}

// Tried in turn when an image reference has no extension
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp",
	".svg", ".PNG", ".JPG", ".JPEG"}

type ImageResolver interface {
	ResolveImage(dir string, name string) (string, bool)
}

type ImageResolverFunc func(dir string, name string) (string, bool)

func (f ImageResolverFunc) ResolveImage(dir string, name string) (string,
	bool) {
	return f(dir, name)
}

// FileSystemResolver looks images up on the local disk
var FileSystemResolver ImageResolver = ImageResolverFunc(ResolveImage)

// ResolveImage returns the path of the first existing candidate for name,
// searching dir/images, dir/attachments and dir in that order
func ResolveImage(dir string, name string) (string, bool) {
	fileName := filepath.Base(filepath.FromSlash(name))
	if fileName == "." || fileName == string(filepath.Separator) {
		return "", false
	}

	for _, candidate := range imageCandidates(dir, fileName) {
		if utils.FileExists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func imageCandidates(dir string, fileName string) []string {
	candidates := []string{}
	for _, searchDir := range imageSearchDirs {
		base := filepath.Join(dir, searchDir, fileName)
		if filepath.Ext(fileName) != "" {
			candidates = append(candidates, base)
			continue
		}

		for _, ext := range imageExtensions {
			candidates = append(candidates, base+ext)
		}
	}
	return candidates
}
