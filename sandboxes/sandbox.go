package sandboxes

import (
	"os"

	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/logs"
)

type Enabled bool

var sandboxFlag = cmds.Switch("-sandbox", "restrict the application's writes to the working directory (linux)")

func (Module) Enabled(
	loader configs.Loader,
) Enabled {
	if *sandboxFlag {
		return true
	}
	return Enabled(configs.First[bool](loader, "sandbox"))
}

// Writable lists the directory trees the launched application may write to.
type Writable []string

func (Module) Writable(
	loader configs.Loader,
) Writable {
	ret := Writable{".", os.TempDir()}
	ret = append(ret, configs.First[[]string](loader, "sandbox_writable")...)
	return ret
}

// Apply restricts the current process and every child it starts afterwards.
// It cannot be undone.
type Apply func() error

func (Module) Apply(
	enabled Enabled,
	writable Writable,
	logger logs.Logger,
) Apply {
	return func() error {
		if !enabled {
			return nil
		}
		return applySandbox(logger, writable)
	}
}
