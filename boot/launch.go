package boot

import (
	"context"
	"os"

	"github.com/reusee/venvboot/debugs"
	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/sandboxes"
	"github.com/reusee/venvboot/spawns"
)

// LaunchApplication runs the entry with the activated interpreter and waits
// for it. A failing application is a Result, not an error.
type LaunchApplication func(ctx context.Context, activation *envs.Activation) (spawns.Result, error)

func (Module) LaunchApplication(
	entry Entry,
	spawn spawns.Spawn,
	applySandbox sandboxes.Apply,
	tap debugs.Tap,
	newSpan logs.NewSpan,
	logger logs.Logger,
) LaunchApplication {
	return func(ctx context.Context, activation *envs.Activation) (spawns.Result, error) {
		ctx, _ = newSpan(ctx, string(StepLaunch))

		command := spawns.Command{
			Name: activation.Python,
			Args: entry.Argv(),
			Env:  activation.Environ(os.Environ()),
		}
		tap(ctx, "launch", map[string]any{
			"activation": activation,
			"entry":      entry,
			"command":    command,
		})

		if err := applySandbox(); err != nil {
			return spawns.Result{ExitCode: 1}, fail(ctx, StepLaunch, 1, err)
		}

		logger.InfoContext(ctx, "launch", "command", command.String())
		result, err := spawn(ctx, command)
		if err != nil {
			return result, fail(ctx, StepLaunch, result.ExitCode, err)
		}
		if result.Success() {
			logger.InfoContext(ctx, "application exited")
		} else {
			logger.WarnContext(ctx, "application exited",
				"exit_code", result.ExitCode,
				"signal", result.Signal,
			)
		}
		return result, nil
	}
}
