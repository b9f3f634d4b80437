package logs

import (
	"io"
	"os"
)

type Writer io.Writer

// Writer is stderr so that logs never interleave with the launched application's stdout.
func (Module) Writer() Writer {
	return os.Stderr
}
