package boot

import (
	"os"
	"runtime"

	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/vars"
)

const (
	DefaultManifest = "requirements.txt"
	DefaultEntry    = "app.py"
)

type Manifest string

var manifestFlag = cmds.Var[string]("-manifest", "dependency manifest file")

func (Module) Manifest(
	loader configs.Loader,
) Manifest {
	return Manifest(vars.FirstNonZero(
		*manifestFlag,
		configs.First[string](loader, "manifest"),
		DefaultManifest,
	))
}

// Interpreter is the host interpreter that creates the environment.
type Interpreter string

func (Module) Interpreter(
	loader configs.Loader,
) Interpreter {
	return Interpreter(vars.FirstNonZero(
		configs.First[string](loader, "interpreter"),
		os.Getenv("VENVBOOT_PYTHON"),
		defaultInterpreter(runtime.GOOS),
	))
}

func defaultInterpreter(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}

// Entry is what the activated interpreter runs: a script, or a module with -m.
type Entry struct {
	Script string
	Module string
	Args   []string
}

var entryFlag = cmds.Var[string]("-entry", "application script to run")

func (Module) Entry(
	loader configs.Loader,
) Entry {
	entry := Entry{
		Script: configs.First[string](loader, "entry"),
		Module: configs.First[string](loader, "entry_module"),
		Args:   configs.First[[]string](loader, "args"),
	}
	if *entryFlag != "" {
		entry.Script = *entryFlag
		entry.Module = ""
	}
	if entry.Script == "" && entry.Module == "" {
		entry.Script = DefaultEntry
	}
	return entry
}

func (e Entry) Argv() []string {
	var ret []string
	if e.Module != "" {
		ret = append(ret, "-m", e.Module)
	} else {
		ret = append(ret, e.Script)
	}
	return append(ret, e.Args...)
}

type Pause bool

var noPauseFlag = cmds.Switch("-no-pause", "exit without waiting for Enter")

func (Module) Pause(
	loader configs.Loader,
) Pause {
	if *noPauseFlag {
		return false
	}
	return Pause(vars.DerefOr(configs.Lookup[bool](loader, "pause"), true))
}

type UpgradeInstaller bool

func (Module) UpgradeInstaller(
	loader configs.Loader,
) UpgradeInstaller {
	return UpgradeInstaller(vars.DerefOr(configs.Lookup[bool](loader, "upgrade_installer"), true))
}

type IndexURL string

func (Module) IndexURL(
	loader configs.Loader,
) IndexURL {
	return IndexURL(configs.First[string](loader, "index_url"))
}
