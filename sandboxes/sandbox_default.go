//go:build !linux

package sandboxes

import "github.com/reusee/venvboot/logs"

func applySandbox(logger logs.Logger, writable Writable) error {
	logger.Warn("filesystem sandbox is only available on linux")
	return nil
}
