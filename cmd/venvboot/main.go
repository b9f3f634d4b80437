package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/venvboot/boot"
	"github.com/reusee/venvboot/cmds"
	"github.com/reusee/venvboot/configs"
	"github.com/reusee/venvboot/modes"
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "venvboot: %v\n", err)
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// settings are read lazily by providers, surface a broken file before any of them runs
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "venvboot: config: %v\n", err)
			os.Exit(2)
		}
	})

	var code int
	scope.Call(func(
		bootstrap boot.Bootstrap,
	) {
		code = bootstrap(context.Background()).ExitCode
	})
	os.Exit(code)
}
