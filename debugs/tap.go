package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/modes"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var tapFlag = cmds.Switch("-tap", "open a starlark REPL over the launch plan before launching")

type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	mode modes.Mode,
) Tap {
	if !*tapFlag || !mode.Interactive() {
		return func(context.Context, string, map[string]any) {}
	}
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what, "globals", names)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

func Globals(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
