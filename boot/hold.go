package boot

import (
	"context"

	"github.com/reusee/venvboot/consoles"
	"github.com/reusee/venvboot/logs"
)

type HoldConsole func(ctx context.Context)

func (Module) HoldConsole(
	pause Pause,
	hold consoles.Hold,
	newSpan logs.NewSpan,
	logger logs.Logger,
) HoldConsole {
	return func(ctx context.Context) {
		if !pause {
			logger.DebugContext(ctx, "console hold disabled")
			return
		}
		ctx, _ = newSpan(ctx, string(StepHold))
		if err := hold(); err != nil {
			logger.WarnContext(ctx, "console hold", "error", err)
		}
	}
}
