package boot

import (
	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/bootconfigs"
	"github.com/reusee/venvboot/consoles"
	"github.com/reusee/venvboot/debugs"
	"github.com/reusee/venvboot/envs"
	"github.com/reusee/venvboot/logs"
	"github.com/reusee/venvboot/nets"
	"github.com/reusee/venvboot/sandboxes"
	"github.com/reusee/venvboot/spawns"
)

type Module struct {
	dscope.Module
	Configs   bootconfigs.Module
	Consoles  consoles.Module
	Debugs    debugs.Module
	Envs      envs.Module
	Logs      logs.Module
	Nets      nets.Module
	Sandboxes sandboxes.Module
	Spawns    spawns.Module
}
