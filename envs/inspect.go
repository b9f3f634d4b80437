package envs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

type Inspect func(layout Layout) (State, error)

func (Module) Inspect(
	useMarker UseMarker,
) Inspect {
	return func(layout Layout) (State, error) {
		info, err := os.Stat(layout.Dir)
		if errors.Is(err, fs.ErrNotExist) {
			return Absent, nil
		}
		if err != nil {
			return Absent, err
		}
		if !info.IsDir() {
			return Absent, fmt.Errorf("%s exists and is not a directory", layout.Dir)
		}
		if !useMarker {
			return Present, nil
		}
		_, err = os.Stat(layout.MarkerPath())
		if errors.Is(err, fs.ErrNotExist) {
			return Partial, nil
		}
		if err != nil {
			return Absent, err
		}
		return Present, nil
	}
}

type MarkComplete func(layout Layout) error

func (Module) MarkComplete() MarkComplete {
	return func(layout Layout) error {
		content := time.Now().UTC().Format(time.RFC3339) + "\n"
		return os.WriteFile(layout.MarkerPath(), []byte(content), 0644)
	}
}
