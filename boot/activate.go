package boot

import (
	"context"

	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/logs"
)

type ActivateEnvironment func(ctx context.Context, layout envs.Layout) (*envs.Activation, error)

func (Module) ActivateEnvironment(
	activate envs.Activate,
	newSpan logs.NewSpan,
	logger logs.Logger,
) ActivateEnvironment {
	return func(ctx context.Context, layout envs.Layout) (*envs.Activation, error) {
		ctx, _ = newSpan(ctx, string(StepActivate))
		activation, err := activate(layout)
		if err != nil {
			return nil, fail(ctx, StepActivate, 1, err)
		}
		logger.InfoContext(ctx, "activated",
			"virtual_env", activation.Layout.Dir,
			"python", activation.Python,
		)
		return activation, nil
	}
}
