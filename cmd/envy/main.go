package main

import (
	"os"

	"github.com/hbjs97/envy/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
