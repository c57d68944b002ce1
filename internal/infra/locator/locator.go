// Package locator finds the lasgrid executable inside a LAStools installation.
//
// The shim is installed three directory levels below the LAStools root
// (for example lastools/ArcGIS_toolbox/scripts/lasgrid-shim), and the
// binaries live in a fixed subdirectory of that root.
package locator

import (
	"os"
	"path/filepath"

	"github.com/runoshun/lasgrid-shim/internal/domain"
)

// anchorDepth is the number of directory levels between the anchor and the LAStools root.
const anchorDepth = 3

// Locator implements domain.ToolLocator.
type Locator struct {
	dir        string // Fixed tool directory; empty means derive from the anchor
	subpath    string
	executable string
}

// Ensure Locator implements domain.ToolLocator.
var _ domain.ToolLocator = (*Locator)(nil)

// New creates a Locator from the [tool] configuration.
func New(cfg domain.ToolConfig) *Locator {
	l := &Locator{
		dir:        cfg.Dir,
		subpath:    cfg.Subpath,
		executable: cfg.Executable,
	}
	if l.subpath == "" {
		l.subpath = domain.DefaultToolSubpath
	}
	if l.executable == "" {
		l.executable = domain.DefaultExecutableName()
	}
	return l
}

// ToolDir returns the directory expected to hold the binaries for anchor.
func (l *Locator) ToolDir(anchor string) string {
	if l.dir != "" {
		return l.dir
	}
	root := anchor
	for i := 0; i < anchorDepth; i++ {
		root = filepath.Dir(root)
	}
	return filepath.Join(root, l.subpath)
}

// Resolve checks that both the tool directory and the executable exist.
func (l *Locator) Resolve(anchor string) (*domain.ToolPath, error) {
	dir := l.ToolDir(anchor)
	tp := &domain.ToolPath{
		Dir:        dir,
		Executable: filepath.Join(dir, l.executable),
	}

	if info, err := os.Stat(tp.Dir); err != nil || !info.IsDir() {
		return tp, &domain.ToolNotFoundError{What: "directory", Path: tp.Dir}
	}
	if info, err := os.Stat(tp.Executable); err != nil || info.IsDir() {
		return tp, &domain.ToolNotFoundError{What: "executable", Path: tp.Executable}
	}
	return tp, nil
}
