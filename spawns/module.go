package spawns

import (
	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
