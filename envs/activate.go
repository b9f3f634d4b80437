package envs

import (
	"fmt"
	"os"
	"strings"
)

// Activation is the environment as seen by processes launched from it.
type Activation struct {
	Layout Layout
	BinDir string
	Python string
}

type Activate func(layout Layout) (*Activation, error)

func (Module) Activate() Activate {
	return func(layout Layout) (*Activation, error) {
		layout, err := layout.Abs()
		if err != nil {
			return nil, err
		}
		python := layout.Python()
		info, err := os.Stat(python)
		if err != nil {
			return nil, fmt.Errorf("environment %s has no interpreter: %w", layout.Dir, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("environment interpreter %s is a directory", python)
		}
		return &Activation{
			Layout: layout,
			BinDir: layout.BinDir(),
			Python: python,
		}, nil
	}
}

// Environ returns base with the environment activated: VIRTUAL_ENV set,
// the bin dir first in PATH and PYTHONHOME removed.
func (a *Activation) Environ(base []string) []string {
	ret := make([]string, 0, len(base)+2)
	path := ""
	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")
		switch {
		case a.keyIs(key, "PATH"):
			path = value
			continue
		case a.keyIs(key, "VIRTUAL_ENV"),
			a.keyIs(key, "PYTHONHOME"):
			continue
		}
		ret = append(ret, kv)
	}
	if path != "" {
		path = a.BinDir + a.Layout.listSeparator() + path
	} else {
		path = a.BinDir
	}
	ret = append(ret,
		"VIRTUAL_ENV="+a.Layout.Dir,
		"PATH="+path,
	)
	return ret
}

func (a *Activation) keyIs(key, name string) bool {
	if a.Layout.windows() {
		return strings.EqualFold(key, name)
	}
	return key == name
}
