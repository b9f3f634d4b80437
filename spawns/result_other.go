//go:build !unix

package spawns

import "os"

func resultOf(state *os.ProcessState) Result {
	return Result{
		ExitCode: state.ExitCode(),
	}
}
