package sandboxes

import (
	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/bootconfigs"
	"github.com/reusee/venvboot/logs"
)

type Module struct {
	dscope.Module
	Configs bootconfigs.Module
	Logs    logs.Module
}
