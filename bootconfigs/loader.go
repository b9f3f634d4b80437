package bootconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/logs"
)

//go:embed schema.cue
var Schema string

var FileNames = []string{
	"venvboot.cue",
	".venvboot.cue",
}

var configFlag = cmds.Var[string]("-config", "read settings from this file only")

// SearchDirs lists candidate config directories, highest precedence first.
func SearchDirs() (dirs []string) {
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return
}

func Discover(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range FileNames {
			path := filepath.Join(dir, filename)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	var paths []string
	if *configFlag != "" {
		paths = []string{*configFlag}
	} else {
		paths = Discover(SearchDirs())
	}
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}
