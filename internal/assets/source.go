// Package assets supplies raw level and dialog text from a directory, the
// embedded stock content, or a SQLite content pack.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tilequest/internal/content"
)

// ErrNotFound is returned when a source has no entry for a name.
var ErrNotFound = errors.New("assets: not found")

// Source hands out raw content text.
type Source interface {
	// Level returns the document stored under name.
	Level(name string) (string, error)
	// Dialog returns the dialog blob.
	Dialog() (string, error)
	// Names lists the stored level names in the source's natural order.
	Names() ([]string, error)
}

// FSSource reads <name>.txt level files and the dialog file from a file system.
type FSSource struct {
	FS fs.FS
}

// EmbeddedSource returns the stock content compiled into the binary.
func EmbeddedSource() FSSource {
	return FSSource{FS: content.FS}
}

func (s FSSource) Level(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("assets: invalid level name %q", name)
	}
	return s.read(name + ".txt")
}

func (s FSSource) Dialog() (string, error) {
	return s.read(content.DialogFile)
}

// Names returns the level files in the root of the file system, sorted.
func (s FSSource) Names() ([]string, error) {
	entries, err := fs.ReadDir(s.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("assets: list levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == content.DialogFile || path.Ext(name) != ".txt" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

func (s FSSource) read(name string) (string, error) {
	data, err := fs.ReadFile(s.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("assets: read %s: %w", name, err)
	}
	return string(data), nil
}

// DirSource reads content from a directory on disk.
type DirSource struct {
	Root string
}

func (d DirSource) fs() FSSource {
	return FSSource{FS: os.DirFS(d.Root)}
}

func (d DirSource) Level(name string) (string, error) { return d.fs().Level(name) }
func (d DirSource) Dialog() (string, error)           { return d.fs().Dialog() }
func (d DirSource) Names() ([]string, error)          { return d.fs().Names() }
