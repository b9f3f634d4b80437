package boot

import (
	"context"

	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/procs"
	"github.com/reusee/venvboot/spawns"
)

type Outcome struct {
	State      envs.State
	Activation *envs.Activation
	// Launched is set once the application process ran.
	Launched bool
	Result   spawns.Result
	ExitCode int
	Err      error
}

// Bootstrap runs ensure, activate and launch in that order, stopping at the
// first failure, then always holds the console.
type Bootstrap func(ctx context.Context) Outcome

func (Module) Bootstrap(
	layout envs.Layout,
	ensure EnsureEnvironment,
	activate ActivateEnvironment,
	launch LaunchApplication,
	hold HoldConsole,
	logger logs.Logger,
) Bootstrap {
	return func(ctx context.Context) (out Outcome) {
		err := procs.Run(&out, procs.Proc[*Outcome](procs.Procs[*Outcome]{

			procs.Func[*Outcome](func(out *Outcome) (err error) {
				out.State, err = ensure(ctx, layout)
				return
			}),

			procs.Func[*Outcome](func(out *Outcome) (err error) {
				out.Activation, err = activate(ctx, layout)
				return
			}),

			procs.Func[*Outcome](func(out *Outcome) (err error) {
				out.Result, err = launch(ctx, out.Activation)
				out.Launched = err == nil
				return
			}),
		}))

		if err != nil {
			out.Err = err
			out.ExitCode = ExitCodeOf(err)
			logger.ErrorContext(ctx, "bootstrap failed",
				"error", err,
				"exit_code", out.ExitCode,
			)
		} else {
			out.ExitCode = out.Result.ExitCode
		}

		hold(ctx)
		return out
	}
}
