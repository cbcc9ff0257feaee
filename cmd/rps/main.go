package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive session against the computer"`
	Simulate SimulateCmd      `cmd:"" help:"Run headless strategy-vs-strategy simulations"`
	Stats    StatsCmd         `cmd:"" help:"Inspect a saved statistics snapshot"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rps"),
		kong.Description("Rock-paper-scissors against adaptive computer strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
