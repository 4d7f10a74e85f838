// Package lister provides the directory listing capability used by test mode.
// The capability is an interface so the normalization pipeline stays pure and
// tests can substitute a fake filesystem.
package lister

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/kr/fs"
)

// Entry is one item of a directory listing.
type Entry struct {
	Path  string // relative to the listed directory
	IsDir bool
}

// Lister lists the contents of a directory.
// Errors are returned exactly as the underlying operation reports them; the
// tool deliberately does not wrap listing failures into its own taxonomy.
type Lister interface {
	List(path string) ([]Entry, error)
}

// OSLister lists directories on the local filesystem.
type OSLister struct {
	Recursive bool // walk the whole tree instead of a single level
}

// List returns the contents of the directory at path, sorted by name.
// In recursive mode entries from the entire subtree are returned with
// slash-separated relative paths.
func (l OSLister) List(path string) ([]Entry, error) {
	if l.Recursive {
		return walk(path)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Path:  de.Name(),
			IsDir: de.IsDir(),
		})
	}
	return entries, nil
}

// walk traverses the tree rooted at path using a step-wise walker.
func walk(path string) ([]Entry, error) {
	var entries []Entry

	walker := fs.Walk(path)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			return nil, err
		}
		if walker.Path() == path {
			// The walker yields the root itself first; a listing starts below it.
			continue
		}
		rel, err := filepath.Rel(path, walker.Path())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Path:  filepath.ToSlash(rel),
			IsDir: walker.Stat().IsDir(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}
