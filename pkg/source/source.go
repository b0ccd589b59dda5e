package source

import (
	"os"

	"github.com/carvekit/carve/internal/vcs"
)

// ContentSource provides file content from a specific source.
type ContentSource interface {
	// Read returns the content of the file at path.
	Read(path string) ([]byte, error)
}

// FilesystemSource reads files from the local filesystem.
type FilesystemSource struct{}

// NewFilesystem creates a source that reads from the filesystem.
func NewFilesystem() *FilesystemSource {
	return &FilesystemSource{}
}

// Read implements ContentSource.
func (f *FilesystemSource) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// GitSource reads files as of a git revision, resolved against the
// repository containing the requested path.
type GitSource struct {
	rev string
}

// NewGit creates a source pinned to a revision (hash, branch, tag, or
// anything else git rev-parse accepts).
func NewGit(rev string) *GitSource {
	return &GitSource{rev: rev}
}

// Read implements ContentSource.
func (g *GitSource) Read(path string) ([]byte, error) {
	return vcs.FileAt(path, g.rev)
}
