package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/boot"
)

type Module struct {
	dscope.Module
	Boot boot.Module
}
