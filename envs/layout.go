package envs

import (
	"path/filepath"
	"runtime"
)

const (
	DefaultDir = "venv"
	MarkerName = ".venvboot-complete"
)

// Layout locates the pieces of a virtual environment. GOOS is explicit so
// Windows layouts can be computed anywhere.
type Layout struct {
	Dir  string
	GOOS string
}

func NewLayout(dir string) Layout {
	return Layout{
		Dir:  dir,
		GOOS: runtime.GOOS,
	}
}

func (l Layout) windows() bool {
	return l.GOOS == "windows"
}

func (l Layout) BinDir() string {
	if l.windows() {
		return filepath.Join(l.Dir, "Scripts")
	}
	return filepath.Join(l.Dir, "bin")
}

func (l Layout) Python() string {
	if l.windows() {
		return filepath.Join(l.BinDir(), "python.exe")
	}
	return filepath.Join(l.BinDir(), "python")
}

func (l Layout) MarkerPath() string {
	return filepath.Join(l.Dir, MarkerName)
}

func (l Layout) Abs() (Layout, error) {
	dir, err := filepath.Abs(l.Dir)
	if err != nil {
		return l, err
	}
	l.Dir = dir
	return l, nil
}

func (l Layout) listSeparator() string {
	if l.windows() {
		return ";"
	}
	return ":"
}
