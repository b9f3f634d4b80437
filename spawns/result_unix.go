//go:build unix

package spawns

import (
	"os"
	"syscall"
)

func resultOf(state *os.ProcessState) Result {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		sig := status.Signal()
		return Result{
			ExitCode: 128 + int(sig),
			Signal:   sig.String(),
		}
	}
	return Result{
		ExitCode: state.ExitCode(),
	}
}
