package boot

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/nets"
	"github.com/reusee/venvboot/procs"
	"github.com/reusee/venvboot/spawns"
)

// EnsureEnvironment creates the environment and installs the manifest into
// it, unless Inspect says a finished environment is already there. Existing
// environments are never refreshed.
type EnsureEnvironment func(ctx context.Context, layout envs.Layout) (envs.State, error)

func (Module) EnsureEnvironment(
	inspect envs.Inspect,
	useMarker envs.UseMarker,
	markComplete envs.MarkComplete,
	interpreter Interpreter,
	manifest Manifest,
	upgrade UpgradeInstaller,
	indexURL IndexURL,
	installerProxy nets.InstallerProxy,
	spawn spawns.Spawn,
	newSpan logs.NewSpan,
	logger logs.Logger,
) EnsureEnvironment {

	run := func(step Step, command spawns.Command) procs.Proc[context.Context] {
		return procs.Func[context.Context](func(ctx context.Context) error {
			ctx, _ = newSpan(ctx, string(step))
			logger.InfoContext(ctx, "run", "command", command.String())
			result, err := spawn(ctx, command)
			if err != nil {
				return fail(ctx, step, result.ExitCode, err)
			}
			if !result.Success() {
				return fail(ctx, step, result.ExitCode, exitError(command, result))
			}
			return nil
		})
	}

	return func(ctx context.Context, layout envs.Layout) (envs.State, error) {
		ctx, _ = newSpan(ctx, string(StepEnsure))

		state, err := inspect(layout)
		if err != nil {
			return state, fail(ctx, StepEnsure, 1, err)
		}
		logger.InfoContext(ctx, "environment", "dir", layout.Dir, "state", state)
		if !state.NeedsSetup() {
			return state, nil
		}

		proxyURL, err := installerProxy(string(indexURL))
		if err != nil {
			return state, fail(ctx, StepEnsure, 1, err)
		}
		pipInstall := func(args ...string) []string {
			ret := []string{"-m", "pip", "install"}
			if indexURL != "" {
				ret = append(ret, "--index-url", string(indexURL))
			}
			if proxyURL != "" {
				ret = append(ret, "--proxy", proxyURL)
			}
			return append(ret, args...)
		}

		createArgs := []string{"-m", "venv"}
		if state == envs.Partial {
			logger.WarnContext(ctx, "environment setup did not complete before, recreating", "dir", layout.Dir)
			createArgs = append(createArgs, "--clear")
		}
		createArgs = append(createArgs, layout.Dir)

		steps := procs.Procs[context.Context]{
			run(StepCreate, spawns.Command{
				Name: string(interpreter),
				Args: createArgs,
			}),
		}
		if upgrade {
			steps = append(steps, run(StepUpgrade, spawns.Command{
				Name: layout.Python(),
				Args: pipInstall("--upgrade", "pip"),
			}))
		}
		steps = append(steps,
			procs.Func[context.Context](func(ctx context.Context) error {
				if _, err := os.Stat(string(manifest)); err != nil {
					return fail(ctx, StepInstall, 1, fmt.Errorf("manifest: %w", err))
				}
				return nil
			}),
			run(StepInstall, spawns.Command{
				Name: layout.Python(),
				Args: pipInstall("-r", string(manifest)),
			}),
		)
		if useMarker {
			steps = append(steps, procs.Func[context.Context](func(ctx context.Context) error {
				if err := markComplete(layout); err != nil {
					return fail(ctx, StepMark, 1, err)
				}
				return nil
			}))
		}

		if err := procs.Run(ctx, procs.Proc[context.Context](steps)); err != nil {
			return state, err
		}
		logger.InfoContext(ctx, "environment ready", "dir", layout.Dir)
		return state, nil
	}
}

func exitError(command spawns.Command, result spawns.Result) error {
	if result.Signal != "" {
		return fmt.Errorf("%s killed by signal %s", command.Name, result.Signal)
	}
	return fmt.Errorf("%s exited with code %d", command.Name, result.ExitCode)
}
