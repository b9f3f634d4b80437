package spawns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/reusee/venvboot/logs"
)

// ExitNotStarted is reported when the program could not be executed at all,
// matching what a shell reports for a missing command.
const ExitNotStarted = 127

var ErrNotStarted = errors.New("process not started")

type Command struct {
	Name string
	Args []string
	// Env nil inherits the launcher's environment.
	Env []string
	Dir string

	// nil streams are the launcher's own stdio
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type Result struct {
	ExitCode int
	// Signal names the signal that terminated the process, if any.
	Signal string
}

func (r Result) Success() bool {
	return r.ExitCode == 0 && r.Signal == ""
}

// Spawn starts a process and waits for it. A process that ran and failed is
// a Result, not an error.
type Spawn func(ctx context.Context, command Command) (Result, error)

func (Module) Spawn(
	logger logs.Logger,
) Spawn {
	return func(ctx context.Context, command Command) (Result, error) {
		cmd := exec.CommandContext(ctx, command.Name, command.Args...)
		cmd.Env = command.Env
		cmd.Dir = command.Dir
		cmd.Stdin = command.Stdin
		if cmd.Stdin == nil {
			cmd.Stdin = os.Stdin
		}
		cmd.Stdout = command.Stdout
		if cmd.Stdout == nil {
			cmd.Stdout = os.Stdout
		}
		cmd.Stderr = command.Stderr
		if cmd.Stderr == nil {
			cmd.Stderr = os.Stderr
		}

		logger.DebugContext(ctx, "spawn", "command", command.String())
		err := cmd.Run()
		if err == nil {
			return Result{}, nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result := resultOf(exitErr.ProcessState)
			logger.DebugContext(ctx, "exited",
				"command", command.Name,
				"exit_code", result.ExitCode,
				"signal", result.Signal,
			)
			return result, nil
		}
		return Result{
			ExitCode: ExitNotStarted,
		}, fmt.Errorf("%w: %s: %w", ErrNotStarted, command.Name, err)
	}
}
