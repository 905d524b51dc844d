package main

import (
	"os"

	"github.com/idilsaglam/shopping/internal/cli"
	"github.com/idilsaglam/shopping/internal/ui"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
