package boot

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/venvboot/logs"
)

type Step string

const (
	StepEnsure   Step = "ensure_environment"
	StepCreate   Step = "create_environment"
	StepUpgrade  Step = "upgrade_installer"
	StepInstall  Step = "install_dependencies"
	StepMark     Step = "mark_complete"
	StepActivate Step = "activate_environment"
	StepLaunch   Step = "launch_application"
	StepHold     Step = "hold_console"
)

// StepError is a fatal failure of one step. ExitCode is what the launcher
// exits with.
type StepError struct {
	Step     Step
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func fail(ctx context.Context, step Step, exitCode int, err error) error {
	if exitCode == 0 {
		exitCode = 1
	}
	return &StepError{
		Step:     step,
		ExitCode: exitCode,
		Err:      logs.WrapSpan(ctx, err),
	}
}

func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode
	}
	return 1
}
