package envs

import (
	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/vars"
)

type Dir string

var dirFlag = cmds.Var[string]("-env-dir", "environment directory")

func (Module) Dir(
	loader configs.Loader,
) Dir {
	return Dir(vars.FirstNonZero(
		*dirFlag,
		configs.First[string](loader, "env_dir"),
		DefaultDir,
	))
}

func (Module) Layout(
	dir Dir,
) Layout {
	return NewLayout(string(dir))
}

// UseMarker makes a completion marker, not the directory alone, the proof of a finished setup.
type UseMarker bool

var markerFlag = cmds.Switch("-marker", "require a completion marker inside the environment")

func (Module) UseMarker(
	loader configs.Loader,
) UseMarker {
	if *markerFlag {
		return true
	}
	return UseMarker(configs.First[bool](loader, "completion_marker"))
}
